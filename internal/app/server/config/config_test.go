package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, defaultRunAddress, cfg.Server.RunAddress)
	assert.Equal(t, defaultMigrations, cfg.DB.Migrations)
	assert.Equal(t, defaultSecret, cfg.Auth.Secret)
	assert.Equal(t, defaultFolder, cfg.Minio.Folder)
	assert.Equal(t, defaultSMTPPort, cfg.SMTP.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Env: EnvProd}
	cfg.Server.RunAddress = ":9090"
	cfg.Auth.Secret = "real-secret"
	cfg.SMTP.User = "vault@example.com"

	applyDefaults(cfg)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, ":9090", cfg.Server.RunAddress)
	assert.Equal(t, "real-secret", cfg.Auth.Secret)
	// From falls back to the SMTP user when not set explicitly.
	assert.Equal(t, "vault@example.com", cfg.SMTP.From)
}

func TestMustLoad_Defaults(t *testing.T) {
	cfg := MustLoad("does-not-exist.env")
	require.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.Server.RunAddress)
	assert.NotEmpty(t, cfg.Auth.Secret)
}
