package metrics

import (
	"os"
	"strconv"
)

// Config holds the settings for the Prometheus metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP endpoint.
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is added as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process, and build
	// info collectors in addition to the application's own metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}

// DefaultConfig returns a Config with sensible defaults for local use.
func DefaultConfig() Config {
	return Config{
		Address:                 ":9090",
		EnableDefaultCollectors: true,
	}
}

// NewConfig builds a Config from environment variables, falling back to
// DefaultConfig for anything unset.
func NewConfig() Config {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("METRICS_ADDRESS"); ok {
		cfg.Address = v
	}
	if v, ok := os.LookupEnv("METRICS_SERVICE_NAME"); ok {
		cfg.ServiceName = v
	}
	if v, ok := os.LookupEnv("METRICS_ENABLE_DEFAULT_COLLECTORS"); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.EnableDefaultCollectors = enabled
		}
	}

	return cfg
}

// WithAddress sets the metrics server listen address.
func (c Config) WithAddress(address string) Config {
	c.Address = address
	return c
}

// WithServiceName sets the constant service label value.
func (c Config) WithServiceName(name string) Config {
	c.ServiceName = name
	return c
}

// WithDefaultCollectors toggles the standard Go runtime collectors.
func (c Config) WithDefaultCollectors(enabled bool) Config {
	c.EnableDefaultCollectors = enabled
	return c
}
