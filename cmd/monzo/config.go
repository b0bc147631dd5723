package main

import (
	"github.com/kbukum/gomonzo/config"
	"github.com/kbukum/gomonzo/monzo"
	"github.com/kbukum/gomonzo/observability"
	"github.com/kbukum/gomonzo/version"
)

const serviceName = "monzo"

// Config is the full configuration of the monzo command.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Monzo         monzo.Config         `yaml:"monzo" mapstructure:"monzo"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Monzo.ApplyDefaults()

	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Name
	}
	if c.Observability.ServiceVersion == "" {
		c.Observability.ServiceVersion = version.Short()
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
	c.Observability.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Monzo.Validate(); err != nil {
		return err
	}
	return c.Observability.Validate()
}
