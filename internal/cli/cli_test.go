package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroconsult/internal/pkg/jwt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// unsetenv clears keys for the test so a dotenv file can provide them.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_TTL", "1h")

	out, err := run(t, "token", "--actor", "agronomo", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	claims, err := jwt.New("cli-secret", time.Hour).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "agronomo", claims.Actor())
}

func TestTokenCommand_RequiresActor(t *testing.T) {
	_, err := run(t, "token")
	assert.Error(t, err)
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "test.env")
	dsn := filepath.Join(dir, "seed.db")
	require.NoError(t, os.WriteFile(env, []byte("APP_ENV=test\nDATABASE_URL="+dsn+"\n"), 0o600))
	unsetenv(t, "APP_ENV", "DATABASE_URL")

	out, err := run(t, "seed", "--env-file", env)
	require.NoError(t, err)
	assert.Contains(t, out, "client ")
	assert.Contains(t, out, "order ")

	again, err := run(t, "seed", "--env-file", env)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestMigrateCommand(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "migrate.db")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_URL", dsn)

	_, err := run(t, "migrate", "--env-file", filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.FileExists(t, dsn)
}
