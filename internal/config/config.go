package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DiagAddr           string
	CorsAllowedOrigins []string
}

// Load reads configuration from the environment, with a .env file as an
// optional source. Every value has a working default; nothing is required.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               GetEnv("PORTAL_ADDR", ":3333"),
		DiagAddr:           GetEnv("PORTAL_DIAG_ADDR", ":9999"),
		CorsAllowedOrigins: splitCSV(GetEnv("PORTAL_CORS_ALLOWED_ORIGINS", "*")),
	}
}

func GetEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	return value
}

func GetEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}

	return out
}
