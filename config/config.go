package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	Storage          string
	LogLevel         string
	RemoteServerURL  string
	PostgreSQLConfig PostgreSQLConfig
	TracingConfig    TracingConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
	DBSSLMode  string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:     getEnv("SERVICE_PORT", "8081"),
		MetricsPort:     os.Getenv("METRICS_PORT"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		Storage:         getEnv("STORAGE", StoragePostgres),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RemoteServerURL: os.Getenv("REMOTE_SERVER_URL"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "5432"),
			DBName:     os.Getenv("DB_NAME"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
