package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// first when one is present. A missing .env file is not an error.
//
// Recognized variables:
//
//	EYEGLAZE_BACKEND_URL     backend base URL
//	EYEGLAZE_ML_URL          ML service base URL
//	EYEGLAZE_REQUEST_TIMEOUT per-request timeout, e.g. "15s"
//	EYEGLAZE_DB              local database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EYEGLAZE_BACKEND_URL"); v != "" {
		cfg.BackendBaseURL = v
	}
	if v := os.Getenv("EYEGLAZE_ML_URL"); v != "" {
		cfg.MLBaseURL = v
	}
	if v := os.Getenv("EYEGLAZE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("EYEGLAZE_DB"); v != "" {
		cfg.DatabaseFile = v
	}
}
