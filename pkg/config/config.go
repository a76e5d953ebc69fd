package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs at startup. Bucket and
// project identity are required; Load fails fast when they are absent
// instead of surfacing per-request errors later.
type Config struct {
	ServerPort         string
	Environment        string
	StorageBucket      string
	FirestoreProject   string
	ServiceAccountPath string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		StorageBucket:      os.Getenv("STORAGE_BUCKET"),
		FirestoreProject:   os.Getenv("FIRESTORE_PROJECT_ID"),
		ServiceAccountPath: os.Getenv("SERVICE_ACCOUNT_PATH"),
	}

	if config.StorageBucket == "" {
		return nil, fmt.Errorf("missing required env var: STORAGE_BUCKET")
	}
	if config.FirestoreProject == "" {
		return nil, fmt.Errorf("missing required env var: FIRESTORE_PROJECT_ID")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
