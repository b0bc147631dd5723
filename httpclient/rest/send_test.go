package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/kbukum/gomonzo/httpclient"
)

type getThing struct{ id string }

func (getThing) Method() string { return http.MethodGet }
func (getThing) Path() string   { return "/things" }
func (g getThing) Query() url.Values {
	return url.Values{"id": {g.id}}
}

type postThing struct{ name string }

func (postThing) Method() string  { return http.MethodPost }
func (postThing) Path() string    { return "/things" }
func (p postThing) JSONBody() any { return map[string]string{"name": p.name} }

type patchThing struct{}

func (patchThing) Method() string       { return http.MethodPatch }
func (patchThing) Path() string         { return "/things/1" }
func (patchThing) FormBody() url.Values { return url.Values{"metadata[a]": {"b"}} }

type confusedThing struct{ patchThing }

func (confusedThing) JSONBody() any { return struct{}{} }

type thing struct {
	ID    *string `json:"id" validate:"required"`
	Count *int64  `json:"count" validate:"required"`
	Note  string  `json:"note"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(httpclient.Config{BaseURL: srv.URL, Auth: httpclient.BearerAuth("tok")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestSend_DecodesStruct(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "t1" {
			t.Errorf("expected id query, got %q", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("expected bearer auth, got %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"id":"t1","count":3,"extra":true}`))
	})

	got, err := Send[thing](context.Background(), c, getThing{id: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got.ID != "t1" || *got.Count != 3 {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestSend_DecodesPointer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"t1","count":0}`))
	})

	got, err := Send[*thing](context.Background(), c, getThing{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got.Count != 0 {
		t.Errorf("expected zero count to be present, got %+v", got)
	}
}

func TestSend_JSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		data, _ := io.ReadAll(r.Body)
		if string(data) != `{"name":"x"}` {
			t.Errorf("unexpected body %q", data)
		}
		_, _ = w.Write([]byte(`{}`))
	})

	if _, err := Send[Empty](context.Background(), c, postThing{name: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSend_FormBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form content type, got %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("metadata[a]") != "b" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
	})

	if _, err := Send[Empty](context.Background(), c, patchThing{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSend_AmbiguousBody(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := Send[Empty](context.Background(), c, confusedThing{})
	if !errors.Is(err, ErrAmbiguousBody) {
		t.Errorf("expected ErrAmbiguousBody, got %v", err)
	}
	if called {
		t.Error("request should not be sent")
	}
}

func TestSend_EmptyIgnoresBody(t *testing.T) {
	for _, body := range []string{"", "not json", `{"anything":1}`} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(body))
		})
		if _, err := Send[Empty](context.Background(), c, postThing{}); err != nil {
			t.Errorf("body %q: unexpected error: %v", body, err)
		}
	}
}

func TestSend_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"id":`},
		{"empty", ``},
		{"wrong type", `{"id":"t1","count":"three"}`},
		{"missing required", `{"id":"t1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := Send[thing](context.Background(), c, getThing{})
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected *DecodeError, got %T: %v", err, err)
			}
			if string(decErr.Body) != tt.body {
				t.Errorf("expected body to be kept, got %q", decErr.Body)
			}
			if got.ID != nil || got.Count != nil {
				t.Errorf("expected zero value, got %+v", got)
			}
			if !IsDecode(err) || IsAPI(err) || IsTransport(err) {
				t.Error("error helpers disagree")
			}
		})
	}
}

func TestSend_NullPointerResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	got, err := Send[*thing](context.Background(), c, getThing{})
	if !IsDecode(err) {
		t.Errorf("expected decode error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result, got %+v", got)
	}
}

func TestSend_APIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    httpclient.ErrorCode
		wantCode    string
		wantMessage string
	}{
		{"structured", 401, `{"code":"unauthorized.bad_access_token","message":"expired"}`, httpclient.ErrCodeAuth, "unauthorized.bad_access_token", "expired"},
		{"unparseable", 500, `<html>oops</html>`, httpclient.ErrCodeServer, "", ""},
		{"empty body", 404, ``, httpclient.ErrCodeNotFound, "", ""},
		{"array body", 400, `[1,2]`, httpclient.ErrCodeValidation, "", ""},
		{"rate limited", 429, `{"code":"too_many"}`, httpclient.ErrCodeRateLimit, "too_many", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := Send[thing](context.Background(), c, getThing{})
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, apiErr.Kind)
			}
			if apiErr.Code != tt.wantCode || apiErr.Message != tt.wantMessage {
				t.Errorf("expected %q/%q, got %q/%q", tt.wantCode, tt.wantMessage, apiErr.Code, apiErr.Message)
			}
			if string(apiErr.Body) != tt.body {
				t.Errorf("expected raw body, got %q", apiErr.Body)
			}
		})
	}
}

func TestSend_APIErrorBeatsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := Send[Empty](context.Background(), c, postThing{})
	if !IsAuth(err) {
		t.Errorf("expected auth error, got %v", err)
	}
}

func TestSend_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := New(httpclient.Config{BaseURL: base})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Send[thing](context.Background(), c, getThing{})
	var trErr *TransportError
	if !errors.As(err, &trErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if trErr.Err.Code != httpclient.ErrCodeConnection {
		t.Errorf("expected connection code, got %s", trErr.Err.Code)
	}
	if !httpclient.IsConnection(err) {
		t.Error("expected httpclient.IsConnection through TransportError")
	}
}

func TestSend_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Send[thing](ctx, c, getThing{})
	if !IsTransport(err) || !httpclient.IsCanceled(err) {
		t.Errorf("expected canceled transport error, got %v", err)
	}
}

func TestTransform(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"t9","count":7}`))
	})

	got, err := Transform(context.Background(), c, getThing{}, func(w thing) string {
		return *w.ID
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "t9" {
		t.Errorf("expected t9, got %q", got)
	}
}

func TestTransform_PropagatesErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"t9"}`))
	})

	called := false
	got, err := Transform(context.Background(), c, getThing{}, func(w thing) string {
		called = true
		return "x"
	})
	if !IsDecode(err) {
		t.Errorf("expected decode error, got %v", err)
	}
	if called || got != "" {
		t.Error("conversion should not run on error")
	}
}
