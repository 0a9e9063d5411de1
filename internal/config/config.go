package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	ServiceName string

	ServerPort int

	MongoURL      string
	MongoDatabase string

	LogLevel string
}

func Load() Config {
	cfg := Config{
		ServiceName: EnvDefault("SERVICE_NAME", "ecommerce-backend"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		MongoURL:      os.Getenv("MONGODB_URL"),
		MongoDatabase: EnvDefault("MONGODB_DATABASE", "ecommerce"),

		LogLevel: os.Getenv("LOG_LEVEL"),
	}

	MustNonEmpty(cfg.MongoURL, "MONGODB_URL")

	return cfg
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
