package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDatabasePath      = "gabbai.db"
	defaultHebcalBaseURL     = "https://www.hebcal.com"
	defaultHebcalTimeoutSecs = 10
	defaultAllowedOrigins    = "http://localhost:5173"
)

type Config struct {
	// database path (SQLite file)
	DatabasePath string

	// Hebcal calendar service
	HebcalBaseURL     string
	HebcalTimeoutSecs int

	// CORS
	AllowedOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", defaultDatabasePath)

	hebcalBase := strings.TrimRight(getEnvOrDefault("HEBCAL_BASE_URL", defaultHebcalBaseURL), "/")
	hebcalTimeout := getEnvIntOrDefault("HEBCAL_TIMEOUT_SECONDS", defaultHebcalTimeoutSecs)

	var origins []string
	for _, o := range strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", defaultAllowedOrigins), ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	cfg := Config{
		DatabasePath:      dbPath,
		HebcalBaseURL:     hebcalBase,
		HebcalTimeoutSecs: hebcalTimeout,
		AllowedOrigins:    origins,
	}

	return cfg, nil
}
