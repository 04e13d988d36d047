package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates every setting the service reads.
type Config struct {
	Server ServerConfig
	App    AppConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// AppConfig carries application-level settings surfaced to clients and logs.
type AppConfig struct {
	Version        string
	LogLevel       string
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		App: AppConfig{
			Version:        getEnvOrDefault("APP_VERSION", "1.0.0"),
			LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
			AllowedOrigins: splitOrigins(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
