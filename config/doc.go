// Package config loads command configuration from a YAML file, a .env file
// and the process environment, in increasing order of precedence.
//
// Environment variables map onto nested keys by splitting on underscores,
// so MONZO_ACCESS_TOKEN sets monzo.access_token and LOGGING_LEVEL sets
// logging.level.
//
//	var cfg struct {
//	    config.ServiceConfig `mapstructure:",squash"`
//	    Monzo monzo.Config   `mapstructure:"monzo"`
//	}
//	err := config.LoadConfig("monzo", &cfg)
package config
