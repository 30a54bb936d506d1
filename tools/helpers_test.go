package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/morikuni/failure/v2"

	"github.com/betahubio/betahub-mcp/api"
	"github.com/betahubio/betahub-mcp/config"
)

// errorMessage extracts the user-visible message from a failure error.
func errorMessage(err error) string {
	if msg := failure.MessageOf(err); msg != "" {
		return msg.String()
	}
	return err.Error()
}

// newTestToolset spins an httptest server and a Toolset wired to it.
func newTestToolset(t *testing.T, handler http.HandlerFunc) *Toolset {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &config.Config{BaseURL: srv.URL + "/", UserAgent: config.UserAgent}
	return New(cfg, api.NewWithToken(cfg, "pat-test"))
}

// decodeEnvelope parses a tool's JSON text output for assertions.
func decodeEnvelope(t *testing.T, text string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("tool output is not valid JSON: %v\n%s", err, text)
	}
	return out
}
