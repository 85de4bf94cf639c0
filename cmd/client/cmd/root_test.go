package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/session"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_Flow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "prod")
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DATA_PATH", "")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := run(t, "", "marks", "list")
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)

	_, err = run(t, "\n", "auth", "login", "--username", "alice", "--password-stdin")
	require.Error(t, err)
	assert.Equal(t, "Both username and password are required.", err.Error())

	out, err := run(t, "pw\n", "auth", "login", "--username", "alice", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")

	_, err = run(t, "", "marks", "add", "--maths", "70")
	require.Error(t, err)
	assert.Equal(t, "Student name is required.", err.Error())

	out, err = run(t, "", "marks", "add", "--student", "Bob", "--chemistry", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Chemistry: 90")

	out, err = run(t, "", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")

	out, err = run(t, "", "marks", "list", "--format", "json")
	require.NoError(t, err)

	var groups []marks.Group
	require.NoError(t, json.Unmarshal([]byte(out), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "Bob", groups[0].StudentName)

	out, err = run(t, "", "marks", "list", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Electronics")
	assert.Contains(t, out, "Всего записей: 1")

	_, err = run(t, "", "auth", "logout")
	require.NoError(t, err)

	out, err = run(t, "", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Не выполнен вход")
}
