package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")

	cfg, err := Load(Flags())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.Development)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Len(t, cfg.TokenSecret, 64)
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	_, err := Load(Flags())
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	t.Setenv("MINEFIELD_TOKEN_SECRET", "from-env")
	t.Setenv("MINEFIELD_SESSION_TTL", "5m")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nbase-path: /mines/\n"), 0o600))

	flags := Flags()
	require.NoError(t, flags.Parse([]string{"--config", path, "--session-ttl", "10m"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/mines", cfg.BasePath)
	assert.Equal(t, "from-env", cfg.TokenSecret)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
}

func TestJWT(t *testing.T) {
	j, err := NewJWT("secret", time.Hour)
	require.NoError(t, err)

	token, err := j.Issue("abc")
	require.NoError(t, err)

	claims, err := j.ParseSessionClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionID)

	other, err := NewJWT("other", time.Hour)
	require.NoError(t, err)
	_, err = other.ParseSessionClaims(token)
	assert.Error(t, err)

	j.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = j.ParseSessionClaims(token)
	assert.Error(t, err)
}
