package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ArangoConfig holds the settings of the connection to the document database.
type ArangoConfig struct {
	Endpoint   string `validate:"required,url"`
	Database   string `validate:"required"`
	User       string `validate:"required_with=Password"`
	Password   string
	Token      string
	JWTSecret  string
	Cluster    bool
	TimeoutSec int `validate:"min=1,max=600"`

	// Collections are created at startup when missing.
	Collections []string `validate:"dive,required"`
}

// Timeout returns the per request timeout.
func (c ArangoConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"oneof=debug info warn error panic fatal"`
	Arango   ArangoConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Arango: ArangoConfig{
			Endpoint:    getEnv("ARANGO_ENDPOINT", "http://localhost:8529"),
			Database:    getEnv("ARANGO_DATABASE", "_system"),
			User:        getEnv("ARANGO_USER", ""),
			Password:    getEnv("ARANGO_PASSWORD", ""),
			Token:       getEnv("ARANGO_TOKEN", ""),
			JWTSecret:   getEnv("ARANGO_JWT_SECRET", ""),
			Cluster:     getEnvBool("ARANGO_CLUSTER", false),
			TimeoutSec:  getEnvInt("ARANGO_TIMEOUT_SEC", 30),
			Collections: getEnvList("ARANGO_COLLECTIONS"),
		},
	}
}

// Validate checks the configuration and reports the first invalid setting.
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks the connection settings alone, for tools that do not serve HTTP.
func (c ArangoConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid arango config: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvList(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
