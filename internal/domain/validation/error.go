package validation

import "errors"

// ValidationError - ошибка пользовательского ввода с текстом для показа пользователю
type ValidationError struct {
	Field   string
	Message string
}

func New(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// As извлекает ValidationError из цепочки ошибок
func As(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
