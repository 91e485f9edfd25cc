package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Minimum level emitted. One of the level constants above.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as a constant field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	level := os.Getenv("ZAP_LOGGER_LEVEL")
	if level == "" {
		level = Info
	}
	return Config{
		Level:       level,
		ServiceName: os.Getenv("LOGGER_SERVICE_NAME"),
	}
}
