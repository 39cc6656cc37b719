package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBUrl    string
	DataFile string
	AppEnv   string
}

// LoadConfig reads the environment (and an optional .env file). DB_URL
// selects the storage target: when set, logs and the profile live in
// PostgreSQL; when empty, the embedded file store at DataFile is used.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		DBUrl:    getEnv("DB_URL", ""),
		DataFile: getEnv("DATA_FILE", "health-journal.json"),
		AppEnv:   normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
