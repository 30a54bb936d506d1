package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/betahubio/betahub-mcp/api"
	"github.com/betahubio/betahub-mcp/auth"
	"github.com/betahubio/betahub-mcp/config"
	"github.com/betahubio/betahub-mcp/tools"
)

func testToolset(t *testing.T, handler http.HandlerFunc) *tools.Toolset {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &config.Config{BaseURL: srv.URL + "/", UserAgent: config.UserAgent}
	return tools.New(cfg, api.NewWithToken(cfg, "pat-test"))
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestInitToolsRegistersAllTools(t *testing.T) {
	ts := testToolset(t, func(w http.ResponseWriter, r *http.Request) {})
	session := &auth.Session{Token: "pat-test"}

	list := InitTools(session, ts)

	want := map[string]bool{
		"listProjects":      false,
		"listSuggestions":   false,
		"searchSuggestions": false,
		"listIssues":        false,
		"searchIssues":      false,
		"listIssueTags":     false,
		"listReleases":      false,
	}
	for _, st := range list {
		if _, ok := want[st.Tool.Name]; !ok {
			t.Errorf("unexpected tool %q", st.Tool.Name)
			continue
		}
		want[st.Tool.Name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("tool %q not registered", name)
		}
	}
}

func TestAuthGuardRejectsWithoutSession(t *testing.T) {
	called := false
	ts := testToolset(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	list := InitTools(nil, ts)
	for _, st := range list {
		result, err := st.Handler(context.Background(), callRequest(st.Tool.Name, map[string]any{"projectId": "pr-1"}))
		if err != nil {
			t.Fatalf("%s: handler error = %v", st.Tool.Name, err)
		}
		if !result.IsError {
			t.Errorf("%s: expected error result without session", st.Tool.Name)
		}
	}
	if called {
		t.Error("tool logic ran despite missing session")
	}
}

func TestHandlerDecodesNumericArguments(t *testing.T) {
	var gotQuery string
	ts := testToolset(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"issues": []}`))
	})

	list := InitTools(&auth.Session{Token: "pat-test"}, ts)
	for _, st := range list {
		if st.Tool.Name != "listIssues" {
			continue
		}
		// JSON numbers arrive as float64
		result, err := st.Handler(context.Background(), callRequest("listIssues", map[string]any{
			"projectId": "pr-1",
			"page":      float64(3),
			"perPage":   float64(30),
		}))
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected error result: %+v", result)
		}
	}
	if gotQuery != "page=3&per_page=30" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestHandlerReportsValidationFailure(t *testing.T) {
	ts := testToolset(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected")
	})

	list := InitTools(&auth.Session{Token: "pat-test"}, ts)
	for _, st := range list {
		if st.Tool.Name != "searchIssues" {
			continue
		}
		result, err := st.Handler(context.Background(), callRequest("searchIssues", map[string]any{
			"projectId": "pr-1",
		}))
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if !result.IsError {
			t.Error("expected error result for missing query/scopedId")
		}
	}
}
