package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

// Config is the process configuration, sourced from the environment.
type Config struct {
	Port string

	// StorageBackend selects the location repository implementation.
	StorageBackend string
	// DatabaseURL is required when StorageBackend is "postgres".
	DatabaseURL string
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "3000"),
		StorageBackend: getenv("STORAGE_BACKEND", StorageBackendMemory),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}

	switch cfg.StorageBackend {
	case StorageBackendMemory:
	case StorageBackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_BACKEND %q (want %s or %s)", cfg.StorageBackend, StorageBackendMemory, StorageBackendPostgres)
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
