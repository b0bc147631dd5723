package config

import (
	"strings"

	"github.com/spf13/viper"
)

// bindEnv sets every KEY=value pair under all of its nested key variants.
// Keys that do not match a config field are ignored by Unmarshal.
func bindEnv(v *viper.Viper, environ []string) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants lists the config keys an environment variable may address.
//
//	MONZO_TLS_SKIP_VERIFY -> monzo_tls_skip_verify, monzo.tls.skip.verify,
//	                         monzo.tls_skip_verify, monzo.tls.skip_verify
func envKeyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) == 1 {
		return []string{lower}
	}

	variants := []string{lower, strings.Join(parts, ".")}
	for i := 1; i < len(parts)-1; i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}
