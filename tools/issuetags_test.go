package tools

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/betahubio/betahub-mcp/api"
	"github.com/google/go-cmp/cmp"
)

func intPtr(v int) *int { return &v }

func TestBuildTagForest(t *testing.T) {
	tags := []api.IssueTag{
		{ID: 1, Name: "UI"},
		{ID: 2, Name: "Buttons", ParentTagID: intPtr(1)},
		{ID: 3, Name: "Lost", ParentTagID: intPtr(999)},
	}

	forest := buildTagForest(tags)

	if len(forest.sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(forest.sections))
	}
	section := forest.sections[0]
	if section.parent.ID != 1 {
		t.Errorf("parent = %d", section.parent.ID)
	}
	if diff := cmp.Diff([]api.IssueTag{tags[1]}, section.children); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]api.IssueTag{tags[2]}, forest.orphans); diff != "" {
		t.Errorf("orphans mismatch (-want +got):\n%s", diff)
	}
}

func TestListIssueTagsReport(t *testing.T) {
	ts := newTestToolset(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/pr-1/issue_tags.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"tags": [
			{"id": 1, "name": "UI", "color": "#ff0000", "description": "Interface problems"},
			{"id": 2, "name": "Buttons", "color": "#00ff00", "parent_tag_id": 1},
			{"id": 3, "name": "Lost", "color": "#0000ff", "parent_tag_id": 999}
		]}`))
	})

	text, err := ts.ListIssueTags(context.Background(), ListIssueTagsInput{ProjectID: "pr-1"})
	if err != nil {
		t.Fatalf("ListIssueTags() error = %v", err)
	}

	for _, want := range []string{
		"# Issue Tags for Project pr-1",
		"Found 3 tag(s)",
		"## UI (ID: 1)",
		"**Color:** #ff0000",
		"**Description:** Interface problems",
		"- Buttons (ID: 2)",
		"## Orphaned Tags",
		"- Lost (ID: 3, Missing Parent ID: 999)",
		"`listIssues` tool's `tagIds` parameter",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}

	// the orphan must not also appear under a section
	if strings.Count(text, "Lost (ID: 3") != 1 {
		t.Errorf("orphan counted more than once:\n%s", text)
	}
}

func TestListIssueTagsEmpty(t *testing.T) {
	ts := newTestToolset(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tags": []}`))
	})

	text, err := ts.ListIssueTags(context.Background(), ListIssueTagsInput{ProjectID: "pr-1"})
	if err != nil {
		t.Fatalf("ListIssueTags() error = %v", err)
	}
	if text != "No issue tags found in this project." {
		t.Errorf("text = %q", text)
	}
}

func TestListIssueTagsNotFound(t *testing.T) {
	ts := newTestToolset(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := ts.ListIssueTags(context.Background(), ListIssueTagsInput{ProjectID: "pr-404"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errorMessage(err), "Project pr-404 not found") {
		t.Errorf("error = %v", err)
	}
}
