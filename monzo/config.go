package monzo

import (
	"time"

	"github.com/kbukum/gomonzo/httpclient"
	"github.com/kbukum/gomonzo/validation"
)

// Config holds client settings loaded from configuration files or the
// environment.
type Config struct {
	// AccessToken is the OAuth access token sent as a bearer token.
	AccessToken string `yaml:"access_token" mapstructure:"access_token" validate:"required"`

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
}

// Validate checks required fields and formats.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.TLS.Validate()
}
