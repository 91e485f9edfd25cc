package tidepool

import (
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds connection settings for the two Tidepool services.
//
// The client talks to two separately deployed HTTP services: the query
// service (search, namespace inspection) and the ingest service (upsert,
// delete, compaction, write-side status). Each gets its own base URL.
//
// Example (programmatic):
//
//	cfg := tidepool.DefaultConfig()
//	cfg.QueryURL = "http://localhost:8080"
//	cfg.IngestURL = "http://localhost:8081"
//	cfg.DefaultNamespace = "docs"
//
// Example (builder style):
//
//	cfg := tidepool.DefaultConfig().
//	    WithDefaultNamespace("docs").
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Base URL of the query service, e.g. "http://localhost:8080".
	QueryURL string `yaml:"query_url" env:"TIDEPOOL_QUERY_URL"`

	// Base URL of the ingest service, e.g. "http://localhost:8081".
	IngestURL string `yaml:"ingest_url" env:"TIDEPOOL_INGEST_URL"`

	// Namespace used by namespace-scoped calls when no explicit namespace
	// is passed. Optional; when empty, every namespace-scoped call must
	// carry an explicit namespace.
	DefaultNamespace string `yaml:"default_namespace" env:"TIDEPOOL_DEFAULT_NAMESPACE"`

	// Maximum request duration before the transport times out.
	Timeout time.Duration `yaml:"timeout" env:"TIDEPOOL_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for local development.
func DefaultConfig() *Config {
	return &Config{
		QueryURL:  "http://localhost:8080",
		IngestURL: "http://localhost:8081",
		Timeout:   30 * time.Second,
	}
}

// NewConfig reads from environment variables, falling back to defaults.
func NewConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("TIDEPOOL_QUERY_URL"); v != "" {
		cfg.QueryURL = v
	}
	if v := os.Getenv("TIDEPOOL_INGEST_URL"); v != "" {
		cfg.IngestURL = v
	}
	if v := os.Getenv("TIDEPOOL_DEFAULT_NAMESPACE"); v != "" {
		cfg.DefaultNamespace = v
	}
	if v := os.Getenv("TIDEPOOL_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	return cfg
}

// Builder-style helpers (optional, ergonomic)

func (c *Config) WithQueryURL(u string) *Config {
	c.QueryURL = u
	return c
}

func (c *Config) WithIngestURL(u string) *Config {
	c.IngestURL = u
	return c
}

func (c *Config) WithDefaultNamespace(ns string) *Config {
	c.DefaultNamespace = ns
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// Validate ensures both service URLs are present and parseable.
func (c *Config) Validate() error {
	if c.QueryURL == "" {
		return configurationError("missing query service URL")
	}
	if c.IngestURL == "" {
		return configurationError("missing ingest service URL")
	}
	for _, base := range []string{c.QueryURL, c.IngestURL} {
		u, err := url.Parse(base)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return configurationError("invalid service URL %q", base)
		}
	}
	return nil
}
