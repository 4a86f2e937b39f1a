// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server, the catalog
// upstream, and the snapshot cooldown.
type Config struct {
	HTTPPort         string
	CatalogBaseURL   string
	GatewayTimeout   time.Duration
	SnapshotCooldown time.Duration
	DefaultThreshold int
	DatabaseDSN      string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
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

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPPort:         getenv("PORT", "3000"),
		CatalogBaseURL:   getenv("CATALOG_BASE_URL", "http://localhost:5000/api"),
		GatewayTimeout:   durenvs("GATEWAY_TIMEOUT", 10),
		SnapshotCooldown: durenvs("SNAPSHOT_COOLDOWN", 30),
		DefaultThreshold: atoienv("LOW_STOCK_THRESHOLD", 10),
		DatabaseDSN:      getenv("DATABASE_URL", ""),
	}
}
