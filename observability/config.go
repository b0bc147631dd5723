package observability

import (
	"fmt"
	"time"
)

// Config configures the OpenTelemetry tracer and meter providers.
type Config struct {
	// Enabled turns exporting on. When false the global no-op providers stay in place.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// ServiceName is the name of the service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (development, staging, production).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultConfig returns sensible defaults for development.
func DefaultConfig(serviceName string) Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		SampleRate:     1.0,
		Interval:       15 * time.Second,
	}
}

// ApplyDefaults fills zero-value fields from DefaultConfig.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig(c.ServiceName)
	if c.ServiceVersion == "" {
		c.ServiceVersion = d.ServiceVersion
	}
	if c.Environment == "" {
		c.Environment = d.Environment
	}
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.ServiceName == "" {
		return fmt.Errorf("observability.service_name is required")
	}
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("observability.sample_rate must be between 0 and 1 (got: %v)", c.SampleRate)
	}
	return nil
}
