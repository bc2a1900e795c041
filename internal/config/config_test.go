package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("ARANGO_ENDPOINT", "http://arango:8529")
	t.Setenv("ARANGO_DATABASE", "shop")
	t.Setenv("ARANGO_TIMEOUT_SEC", "5")
	t.Setenv("ARANGO_CLUSTER", "true")
	t.Setenv("ARANGO_COLLECTIONS", "customers, orders,,")

	cfg := Load()

	assert.Equal(t, "http://arango:8529", cfg.Arango.Endpoint)
	assert.Equal(t, "shop", cfg.Arango.Database)
	assert.Equal(t, 5*time.Second, cfg.Arango.Timeout())
	assert.True(t, cfg.Arango.Cluster)
	assert.Equal(t, []string{"customers", "orders"}, cfg.Arango.Collections)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			Port:     "8080",
			LogLevel: "info",
			Arango: ArangoConfig{
				Endpoint:   "http://localhost:8529",
				Database:   "_system",
				TimeoutSec: 30,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *AppConfig) {}},
		{name: "basic auth", mutate: func(c *AppConfig) { c.Arango.User = "root"; c.Arango.Password = "secret" }},
		{name: "password without user", mutate: func(c *AppConfig) { c.Arango.Password = "secret" }, wantErr: true},
		{name: "endpoint not a url", mutate: func(c *AppConfig) { c.Arango.Endpoint = "localhost" }, wantErr: true},
		{name: "missing database", mutate: func(c *AppConfig) { c.Arango.Database = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *AppConfig) { c.Arango.TimeoutSec = 0 }, wantErr: true},
		{name: "unknown log level", mutate: func(c *AppConfig) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "port not numeric", mutate: func(c *AppConfig) { c.Port = "http" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArangoConfigValidate(t *testing.T) {
	c := ArangoConfig{Endpoint: "https://db.example.com:8529", Database: "shop", TimeoutSec: 5}
	assert.NoError(t, c.Validate())

	c.Collections = []string{"customers", ""}
	assert.Error(t, c.Validate())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
