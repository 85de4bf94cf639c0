package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaVersion - текущая версия формата значений
const SchemaVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported schema version")

// envelope - обертка каждого значения: {"version":1,"data":...}
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Encode сериализует значение в версионированный JSON документ
func Encode(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}

	raw, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}

	return string(raw), nil
}

// Decode разбирает версионированный документ в v
func Decode(raw string, v interface{}) error {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	if env.Version != SchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	if len(env.Data) == 0 {
		return fmt.Errorf("empty data")
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}

	return nil
}

// Fetch читает и декодирует значение по ключу
func Fetch(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return Decode(raw, v)
}
