package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Logging     LoggingConfig
	Environment string
}

type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig describes the MongoDB deployment the server talks to.
// Either URI is set directly, or it is assembled from the credential
// parts (User, Password, Cluster) at load time.
type DatabaseConfig struct {
	URI      string
	Name     string
	User     string
	Password string
	Cluster  string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 3000),
		},
		Database: DatabaseConfig{
			URI:      getEnv("MONGO_URI", ""),
			Name:     getEnv("MONGO_DB_NAME", ""),
			User:     getEnv("MONGO_USER", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Cluster:  getEnv("MONGO_CLUSTER", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			// Empty means "decide from the environment" in NewLogger.
			Format: getEnv("LOG_FORMAT", ""),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if cfg.Database.URI == "" {
		if cfg.Database.User == "" || cfg.Database.Password == "" || cfg.Database.Cluster == "" {
			return Config{}, fmt.Errorf("MONGO_URI or MONGO_USER/MONGO_PASSWORD/MONGO_CLUSTER are required")
		}
		cfg.Database.URI = buildMongoURI(cfg.Database)
	}
	if cfg.Database.Name == "" {
		return Config{}, fmt.Errorf("MONGO_DB_NAME is required")
	}
	return cfg, nil
}

func buildMongoURI(db DatabaseConfig) string {
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/%s?retryWrites=true&w=majority",
		url.QueryEscape(db.User), url.QueryEscape(db.Password), db.Cluster, db.Name)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
