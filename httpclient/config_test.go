package httpclient

import (
	"crypto/tls"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.Name != "http" {
		t.Errorf("expected name http, got %q", cfg.Name)
	}

	cfg = Config{Name: "monzo", Timeout: time.Second}
	cfg.ApplyDefaults()
	if cfg.Name != "monzo" || cfg.Timeout != time.Second {
		t.Errorf("defaults should not override explicit values: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Timeout: time.Second, BaseURL: "https://api.monzo.com"}, false},
		{"empty base url", Config{Timeout: time.Second}, false},
		{"zero timeout", Config{}, true},
		{"relative base url", Config{Timeout: time.Second, BaseURL: "/api"}, true},
		{"old tls", Config{Timeout: time.Second, TLS: &TLSConfig{MinVersion: tls.VersionTLS10}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
