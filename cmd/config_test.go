package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_USER", "storefront")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "0 */5 * * * *", cfg.ReportSchedule)
	assert.False(t, cfg.PolicyDeliverySelfAdvance)
	assert.Equal(t,
		"host=localhost port=5432 user=storefront password=secret dbname=storefront sslmode=disable",
		cfg.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLICY_DELIVERY_SELF_ADVANCE", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.PolicyDeliverySelfAdvance)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "")
	os.Unsetenv("HTTP_PORT")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HTTP_PORT") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
