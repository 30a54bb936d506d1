package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/morikuni/failure/v2"

	"github.com/betahubio/betahub-mcp/api"
)

// SearchInput is shared by the suggestions and issues search tools.
// Exactly one of Query or ScopedID must be set.
type SearchInput struct {
	ProjectID string `mapstructure:"projectId" validate:"required"`
	Query     string `mapstructure:"query"`
	SkipIDs   string `mapstructure:"skipIds"`
	Partial   bool   `mapstructure:"partial"`
	ScopedID  string `mapstructure:"scopedId"`
}

// searchShape identifies which of the three upstream response forms was
// returned: a bare array of titles, an object carrying the full entity
// list, or a single entity from a scoped-id lookup. The shape is
// resolved once here instead of per call site.
type searchShape int

const (
	shapeTitles searchShape = iota
	shapeFull
	shapeEntity
)

func discriminateSearch(raw json.RawMessage, listKey string) searchShape {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return shapeTitles
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err == nil {
		if _, ok := probe[listKey]; ok {
			return shapeFull
		}
	}
	return shapeEntity
}

func (in SearchInput) buildEndpoint(resourcePath string) string {
	var q queryParams
	if in.Query != "" {
		q.add("query", in.Query)
	}
	if in.ScopedID != "" {
		q.add("scoped_id", in.ScopedID)
	}
	if in.SkipIDs != "" {
		q.add("skip_ids", in.SkipIDs)
	}
	if in.Partial {
		q.add("partial", "true")
	}
	return appendQuery("projects/"+in.ProjectID+"/"+resourcePath+"/search.json", &q)
}

func (in SearchInput) check(ctx context.Context) error {
	if err := validate.StructCtx(ctx, in); err != nil {
		return validationError(err)
	}
	if in.Query == "" && in.ScopedID == "" {
		return failure.New(ErrValidation,
			failure.Message("Either query or scopedId must be provided"),
		)
	}
	return nil
}

// translateSearchError maps a 404 to the searched entity kind when a
// scoped-id lookup was requested, and to the project otherwise.
func translateSearchError(err error, in SearchInput, entityKind, op, deniedResource string) error {
	var se *api.StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound && in.ScopedID != "" {
		return failure.New(ErrNotFound,
			failure.Message(entityKind+" "+in.ScopedID+" not found"),
			failure.Context{"endpoint": se.Endpoint},
		)
	}
	return translateAPIError(err, op,
		resourceRef{"Project", in.ProjectID}, resourceRef{deniedResource, in.ProjectID})
}

type titleSearchEnvelope struct {
	Titles    []string `json:"titles"`
	Type      string   `json:"type"`
	ProjectID string   `json:"project_id"`
	Query     string   `json:"query,omitempty"`
	Partial   bool     `json:"partial"`
}

// SearchSuggestions searches feature requests by text query or looks one
// up by scoped id.
func (t *Toolset) SearchSuggestions(ctx context.Context, in SearchInput) (string, error) {
	if err := in.check(ctx); err != nil {
		return "", err
	}

	var raw json.RawMessage
	if err := t.client.Get(ctx, in.buildEndpoint("feature_requests"), &raw); err != nil {
		return "", translateSearchError(err, in, "Feature request",
			"search feature requests", "search feature requests in project")
	}

	switch discriminateSearch(raw, "feature_requests") {
	case shapeTitles:
		var titles []string
		if err := json.Unmarshal(raw, &titles); err != nil {
			return "", failure.New(ErrAPI,
				failure.Message("Failed to search feature requests: "+err.Error()))
		}
		return jsonText(titleSearchEnvelope{
			Titles:    titles,
			Type:      "title_search",
			ProjectID: in.ProjectID,
			Query:     in.Query,
			Partial:   in.Partial,
		})

	case shapeFull:
		var full struct {
			FeatureRequests []api.FeatureRequest `json:"feature_requests"`
			HasMore         bool                 `json:"has_more"`
		}
		if err := json.Unmarshal(raw, &full); err != nil {
			return "", failure.New(ErrAPI,
				failure.Message("Failed to search feature requests: "+err.Error()))
		}
		return jsonText(struct {
			FeatureRequests []api.FeatureRequest `json:"feature_requests"`
			HasMore         bool                 `json:"has_more"`
			Type            string               `json:"type"`
			ProjectID       string               `json:"project_id"`
			Query           string               `json:"query,omitempty"`
			Partial         bool                 `json:"partial"`
		}{full.FeatureRequests, full.HasMore, "full_search", in.ProjectID, in.Query, in.Partial})

	default:
		var fr api.FeatureRequest
		if err := json.Unmarshal(raw, &fr); err != nil {
			return "", failure.New(ErrAPI,
				failure.Message("Failed to search feature requests: "+err.Error()))
		}
		return jsonText(struct {
			FeatureRequest api.FeatureRequest `json:"feature_request"`
			Type           string             `json:"type"`
			ProjectID      string             `json:"project_id"`
			ScopedID       string             `json:"scoped_id"`
		}{fr, "scoped_id_search", in.ProjectID, in.ScopedID})
	}
}

// SearchIssues searches issues by text query or looks one up by scoped
// id. Same dual-mode contract as SearchSuggestions.
func (t *Toolset) SearchIssues(ctx context.Context, in SearchInput) (string, error) {
	if err := in.check(ctx); err != nil {
		return "", err
	}

	var raw json.RawMessage
	if err := t.client.Get(ctx, in.buildEndpoint("issues"), &raw); err != nil {
		return "", translateSearchError(err, in, "Issue",
			"search issues", "search issues in project")
	}

	switch discriminateSearch(raw, "issues") {
	case shapeTitles:
		var titles []string
		if err := json.Unmarshal(raw, &titles); err != nil {
			return "", failure.New(ErrAPI,
				failure.Message("Failed to search issues: "+err.Error()))
		}
		return jsonText(titleSearchEnvelope{
			Titles:    titles,
			Type:      "title_search",
			ProjectID: in.ProjectID,
			Query:     in.Query,
			Partial:   in.Partial,
		})

	case shapeFull:
		var full struct {
			Issues  []api.Issue `json:"issues"`
			HasMore bool        `json:"has_more"`
		}
		if err := json.Unmarshal(raw, &full); err != nil {
			return "", failure.New(ErrAPI,
				failure.Message("Failed to search issues: "+err.Error()))
		}
		return jsonText(struct {
			Issues    []api.Issue `json:"issues"`
			HasMore   bool        `json:"has_more"`
			Type      string      `json:"type"`
			ProjectID string      `json:"project_id"`
			Query     string      `json:"query,omitempty"`
			Partial   bool        `json:"partial"`
		}{full.Issues, full.HasMore, "full_search", in.ProjectID, in.Query, in.Partial})

	default:
		var issue api.Issue
		if err := json.Unmarshal(raw, &issue); err != nil {
			return "", failure.New(ErrAPI,
				failure.Message("Failed to search issues: "+err.Error()))
		}
		return jsonText(struct {
			Issue     api.Issue `json:"issue"`
			Type      string    `json:"type"`
			ProjectID string    `json:"project_id"`
			ScopedID  string    `json:"scoped_id"`
		}{issue, "scoped_id_search", in.ProjectID, in.ScopedID})
	}
}
