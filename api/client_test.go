package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/betahubio/betahub-mcp/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{BaseURL: baseURL + "/", UserAgent: config.UserAgent}
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewWithToken(testConfig(srv.URL), "tkn-proj")
	err := client.Request(context.Background(), "auth/verify", RequestOptions{
		Method:  http.MethodPost,
		Body:    map[string]string{"k": "v"},
		Headers: map[string]string{"X-Extra": "yes"},
	}, nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	if ua := got.Get("User-Agent"); ua != config.UserAgent {
		t.Errorf("User-Agent = %q", ua)
	}
	// project tokens are sent without a Bearer scheme
	if authz := got.Get("Authorization"); authz != "tkn-proj" {
		t.Errorf("Authorization = %q", authz)
	}
	if ct := got.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if extra := got.Get("X-Extra"); extra != "yes" {
		t.Errorf("X-Extra = %q", extra)
	}
	if gotBody != `{"k":"v"}` {
		t.Errorf("body = %q", gotBody)
	}
}

func TestRequestCallerHeaderOverride(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewWithToken(testConfig(srv.URL), "pat-x")
	err := client.Request(context.Background(), "projects.json", RequestOptions{
		Headers: map[string]string{"User-Agent": "custom/2.0"},
	}, nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if gotUA != "custom/2.0" {
		t.Errorf("User-Agent = %q, want caller override", gotUA)
	}
}

func TestRequestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewWithToken(testConfig(srv.URL), "pat-x")
	err := client.Get(context.Background(), "projects/p-1/issues.json", nil)

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.Status != http.StatusNotFound {
		t.Errorf("Status = %d", se.Status)
	}
	if se.Endpoint != "projects/p-1/issues.json" {
		t.Errorf("Endpoint = %q", se.Endpoint)
	}
}

func TestRequestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewWithToken(testConfig(srv.URL), "pat-x")
	err := client.Get(context.Background(), "projects.json", nil)

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want synthetic 500", se.Status)
	}
	if !strings.HasPrefix(se.Message, "Network error:") {
		t.Errorf("Message = %q, want Network error prefix", se.Message)
	}
}

func TestRequestDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"issues": [{"id": "i-1", "title": "Crash", "status": "new", "priority": "high", "score": 0.5, "created_at": "2025-01-01"}]}`))
	}))
	defer srv.Close()

	client := NewWithToken(testConfig(srv.URL), "pat-x")
	var resp IssuesResponse
	if err := client.Get(context.Background(), "projects/p-1/issues.json", &resp); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Title != "Crash" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestRequestAbsoluteEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// base URL points elsewhere; the absolute endpoint must win
	client := NewWithToken(testConfig("http://base.invalid"), "pat-x")
	if err := client.Get(context.Background(), srv.URL+"/absolute.json", nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotPath != "/absolute.json" {
		t.Errorf("path = %q", gotPath)
	}
}
