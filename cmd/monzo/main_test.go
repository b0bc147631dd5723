package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/kbukum/gomonzo/errors"
	"github.com/kbukum/gomonzo/httpclient/rest"
)

// writeConfig writes a minimal config file so tests never pick up local ones.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, string, error) {
	t.Helper()
	cfg := writeConfig(t, "environment: production\nlogging:\n  format: json\n")
	full := append([]string{"-config", cfg, "-token", "cli-token", "-base-url", srv.URL}, args...)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), full, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Balance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer cli-token" {
			t.Errorf("expected token from flag, got %q", r.Header.Get("Authorization"))
		}
		if r.URL.Query().Get("account_id") != "acc_1" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"balance":5000,"total_balance":6000,"currency":"GBP","spend_today":-250}`))
	}))
	defer srv.Close()

	out, _, err := runCLI(t, srv, "balance", "-account", "acc_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"50.00 GBP", "60.00 GBP", "-2.50 GBP"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRun_Feed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s := string(body)
		for _, want := range []string{`"params[title]":"Saved"`, `"params[body]":""`, `"url":"https://monzo.com"`} {
			if !strings.Contains(s, want) {
				t.Errorf("expected %s in body %s", want, s)
			}
		}
		if strings.Contains(s, "background_color") {
			t.Errorf("unset flag must not be sent: %s", s)
		}
	}))
	defer srv.Close()

	out, _, err := runCLI(t, srv, "feed", "-account", "acc_1", "-title", "Saved", "-image-url", "https://i.png",
		"-url", "https://monzo.com", "-body", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "feed item created") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRun_Annotate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(data))
		if form.Get("metadata[notes]") != "lunch" || form.Get("metadata[split]") != "2" {
			t.Errorf("unexpected form %v", form)
		}
		_, _ = w.Write([]byte(`{"transaction":{"id":"tx_1","created":"2026-02-03T12:00:00Z","amount":-510,"currency":"GBP",
			"description":"DELI","metadata":{"notes":"lunch","split":"2"}}}`))
	}))
	defer srv.Close()

	out, _, err := runCLI(t, srv, "annotate", "-transaction", "tx_1", "-meta", "notes=lunch", "-meta", "split=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"tx_1", "-5.10 GBP", "DELI", "notes=lunch", "split=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRun_MissingArguments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	tests := []struct {
		name string
		args []string
	}{
		{"balance", []string{"balance"}},
		{"feed", []string{"feed", "-account", "acc"}},
		{"annotate without meta", []string{"annotate", "-transaction", "tx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, srv, tt.args...)
			if !apperrors.IsAppError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRun_BadMetaFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, _, err := runCLI(t, srv, "annotate", "-transaction", "tx", "-meta", "novalue")
	if err == nil || !strings.Contains(err.Error(), "key=value") {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestRun_APIErrorIsLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":"forbidden.insufficient_permissions","message":"nope"}`))
	}))
	defer srv.Close()

	_, stderr, err := runCLI(t, srv, "balance", "-account", "acc")
	if !rest.IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if !strings.Contains(stderr, "command failed") || !strings.Contains(stderr, "forbidden.insufficient_permissions") {
		t.Errorf("expected error log on stderr, got %q", stderr)
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if err := run(context.Background(), nil, &stdout, &stderr); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
	if err := run(context.Background(), []string{"transfer"}, &stdout, &stderr); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error for unknown command, got %v", err)
	}
	if !strings.Contains(stderr.String(), "usage: monzo") {
		t.Errorf("expected usage text, got %q", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"version"}, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "gomonzo ") {
		t.Errorf("unexpected version output %q", stdout.String())
	}
}

func TestRun_MissingToken(t *testing.T) {
	t.Setenv("MONZO_ACCESS_TOKEN", "")
	cfg := writeConfig(t, "environment: production\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", cfg, "balance", "-account", "acc"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "access_token") {
		t.Errorf("expected missing token error, got %v", err)
	}
}

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	cfg.Monzo.AccessToken = "tok"
	cfg.ApplyDefaults()

	if cfg.Name != "monzo" || cfg.Observability.ServiceName != "monzo" {
		t.Errorf("expected service name defaults, got %q/%q", cfg.Name, cfg.Observability.ServiceName)
	}
	if cfg.Observability.Environment != "development" {
		t.Errorf("expected observability environment from service, got %q", cfg.Observability.Environment)
	}
	if cfg.Monzo.BaseURL != "https://api.monzo.com" {
		t.Errorf("expected default base url, got %q", cfg.Monzo.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaulted config should validate: %v", err)
	}
}
