package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.PublicURL)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "always_new", cfg.Issuance.ReissuePolicy)
	assert.Equal(t, 720, cfg.Admin.TokenTTL)
	assert.Equal(t, 5, cfg.Render.ImageFetchTimeout)
	assert.Equal(t, "./backups", cfg.Backup.Dir)
	assert.False(t, IsProduction(cfg))
}

func TestLoadFromFile(t *testing.T) {
	content := `
server:
  host: "127.0.0.1"
  port: 9090
  public_url: "https://gdgbacolod.example.com"
issuance:
  reissue_policy: "reuse_existing"
admin:
  passphrase: "open sesame"
`
	tmp, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmp.Name())

	_, err = tmp.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmp.Close())

	cfg, err := Load(tmp.Name())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://gdgbacolod.example.com", cfg.Server.PublicURL)
	assert.Equal(t, "reuse_existing", cfg.Issuance.ReissuePolicy)
	assert.Equal(t, "open sesame", cfg.Admin.Passphrase)
	// unset keys keep their defaults
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9191")
	t.Setenv("APP_ISSUANCE_REISSUE_POLICY", "reuse_existing")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "reuse_existing", cfg.Issuance.ReissuePolicy)
}

func TestProductionDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, IsProduction(cfg))
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/no/such/config.yaml")
	assert.Error(t, err)
}
