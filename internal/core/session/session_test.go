package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSessionFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSessionFile(t, `{"username":"ada","account":"jobseeker","token":"tok-123"}`)

	s, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "ada", s.Username)
	assert.Equal(t, RoleJobseeker, s.Account)
	assert.Equal(t, "tok-123", s.Token)
}

func TestLoad_missing_file(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestLoad_rejects_unknown_role(t *testing.T) {
	path := writeSessionFile(t, `{"username":"ada","account":"ADMIN","token":"tok"}`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "unknown account role")
}

func TestLoad_rejects_empty_token(t *testing.T) {
	path := writeSessionFile(t, `{"username":"ada","account":"EMPLOYER","token":"  "}`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "token is empty")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Session{Username: "u", Account: RoleEmployer, Token: "t"}.Validate())
	assert.Error(t, Session{Account: RoleEmployer, Token: "t"}.Validate())
}
