package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publicis/rewards-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "publicis-rewards", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "publicis_rewards", cfg.DB.DBName)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "./uploads", cfg.Uploads.Dir)
	assert.Equal(t, "/uploads", cfg.Uploads.PublicPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "testing", cfg.App.Env)
	assert.Equal(t, "db.interno", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:word/extraña",
		DBName: "publicis_rewards", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.NotContains(t, dsn, "p@ss:word/extraña", "el password debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@host:5432/db?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@host:5432/db?sslmode=require", db.ConnectionString())
}
