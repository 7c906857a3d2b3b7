package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5, cfg.DB.MaxConns)
	assert.Equal(t, 1, cfg.DB.MinConns)
	assert.Equal(t, "default@123", cfg.Auth.DefaultPassword)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 60*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("DB_MAX_CONNS", "2")
	v.Set("DB_MIN_CONNS", "4")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("HTTP_PORT", "not-a-number")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 2, cfg.DB.MaxConns)
	assert.Equal(t, 2, cfg.DB.MinConns)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestFromViper_InvalidPool(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", 0)

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "bb", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/bb?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
