package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Events   EventsConfig
	Otel     OtelConfig
}

type AppConfig struct {
	Port               string `validate:"required,numeric"`
	Environment        string `validate:"required"`
	LogFilePath        string `validate:"required"`
	CorsAllowedOrigins string
	BodyLimitMB        int `validate:"min=1"`
}

type DatabaseConfig struct {
	Driver      string `validate:"oneof=postgres sqlite"`
	Connection  string `validate:"required"`
	AutoMigrate bool
	LogLevel    string `validate:"oneof=silent error warn info"`
}

type EventsConfig struct {
	Topic        string `validate:"required"`
	LogFilePath  string `validate:"required"`
	NatsURL      string // empty disables forwarding
	NatsStream   string
	NatsSubjects string
}

type OtelConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			BodyLimitMB:        getEnvAsInt("APP_BODY_LIMIT_MB", 1),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "postgres"),
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
			LogLevel:    getEnv("DB_LOG_LEVEL", "warn"),
		},
		Events: EventsConfig{
			Topic:        getEnv("EVENTS_TOPIC", "catalog.events"),
			LogFilePath:  getEnv("EVENT_LOG_FILE_PATH", "logs/catalog-events.log"),
			NatsURL:      getEnv("NATS_URL", ""),
			NatsStream:   getEnv("NATS_STREAM", "CATALOG_EVENTS"),
			NatsSubjects: getEnv("NATS_SUBJECTS", "events.>"),
		},
		Otel: OtelConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "cpu-catalog-backend"),
		},
	}
}

// Validate reports the first set of invalid fields, e.g. a missing
// DB_CONNECTION_STRING.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
