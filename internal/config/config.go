package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultCMSEndpoint is used when CMS_ENDPOINT is unset.
const DefaultCMSEndpoint = "http://host.docker.internal:8000/wp-json/wp/v2/"

type Config struct {
	// HTTP server
	ListenAddr  string        // e.g. ":8080"
	HTTPTimeout time.Duration // e.g. 10s (for the content API)

	// Upstream content API
	CMSEndpoint string // e.g. http://host.docker.internal:8000/wp-json/wp/v2/

	// Logging
	LogLevel  string // e.g. "info"
	LogFormat string // "json" or "console"

	// Postgres failure sink; disabled when PGHost is empty
	PGHost     string // e.g. "localhost" or "postgres" when running in compose
	PGPort     int    // e.g. 5432
	PGUser     string // e.g. "app"
	PGPassword string // e.g. "app"
	PGDatabase string // e.g. "content"
	PGSSLMode  string // e.g. "disable" locally, "require" in cloud
}

// BuildDSN composes a keyword/value DSN compatible with pgxpool.
func (c Config) BuildDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PGHost, c.PGPort, c.PGUser, c.PGPassword, c.PGDatabase, c.PGSSLMode,
	)
}

// SinkEnabled reports whether failures should also be stored in Postgres.
func (c Config) SinkEnabled() bool { return c.PGHost != "" }

func FromEnv() Config {
	c := Config{}

	c.ListenAddr = getenv("HTTP_LISTEN_ADDR", ":8080")
	c.HTTPTimeout = getenvd("HTTP_TIMEOUT", 10*time.Second)

	c.CMSEndpoint = getenv("CMS_ENDPOINT", DefaultCMSEndpoint)

	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.LogFormat = getenv("LOG_FORMAT", "json")

	// Postgres pieces
	c.PGHost = getenv("PG_HOST", "")
	c.PGPort = getenvi("PG_PORT", 5432)
	c.PGUser = getenv("PG_USER", "app")
	c.PGPassword = getenv("PG_PASSWORD", "app")
	c.PGDatabase = getenv("PG_DATABASE", "content")
	c.PGSSLMode = getenv("PG_SSLMODE", "disable")

	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		var iv int
		_, err := fmt.Sscanf(v, "%d", &iv)
		if err == nil {
			return iv
		}
	}
	return def
}

func getenvd(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getenv(k, "")); err == nil {
		return d
	}
	return def
}
