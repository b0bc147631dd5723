package config

import (
	"fmt"

	"github.com/kbukum/gomonzo/logger"
	"github.com/kbukum/gomonzo/validation"
)

// ServiceConfig holds the fields every command shares. Embed it with
// `mapstructure:",squash"`.
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in the environment and logging defaults. In
// development the log level defaults to debug.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the shared fields.
func (c *ServiceConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
