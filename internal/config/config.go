package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string
	DBDriver      string // "postgres" or "sqlite"
	DBDSN         string
	SessionSecret string
	ViewsGlob     string
}

// Load reads .env from the usual launch directories, then the environment.
// Missing values fall back to development defaults.
func Load() Config {
	// .env may sit next to the binary or at the repo root (cmd/server runs)
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	return Config{
		Port:          getenv("APP_PORT", "8080"),
		DBDriver:      getenv("DB_DRIVER", "postgres"),
		DBDSN:         os.Getenv("DB_DSN"),
		SessionSecret: getenv("SESSION_SECRET", "dev_fallback_secret"),
		ViewsGlob:     getenv("VIEWS_GLOB", "internal/views/*.tmpl"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
