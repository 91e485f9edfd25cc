package tracer

import (
	"os"
	"strconv"
)

// Config holds the settings for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment (e.g. "development", "production").
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport controls whether spans are exported over OTLP HTTP.
	// When false the tracer provider is still installed but spans stay local.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

// DefaultConfig returns a Config suitable for local development.
func DefaultConfig() Config {
	return Config{
		AppEnv:       "development",
		EnableExport: false,
	}
}

// NewConfig builds a Config from environment variables, falling back to
// DefaultConfig for anything unset. The OTLP endpoint itself is configured
// through the standard OTEL_EXPORTER_OTLP_* variables.
func NewConfig() Config {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("TRACER_SERVICE_NAME"); ok {
		cfg.ServiceName = v
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		cfg.AppEnv = v
	}
	if v, ok := os.LookupEnv("TRACER_ENABLE_EXPORT"); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.EnableExport = enabled
		}
	}

	return cfg
}

// WithServiceName sets the service name reported on every span.
func (c Config) WithServiceName(name string) Config {
	c.ServiceName = name
	return c
}

// WithAppEnv sets the deployment environment attribute.
func (c Config) WithAppEnv(env string) Config {
	c.AppEnv = env
	return c
}

// WithExport toggles OTLP span export.
func (c Config) WithExport(enabled bool) Config {
	c.EnableExport = enabled
	return c
}
