package tools

import (
	"context"
	"encoding/json"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"

	"github.com/betahubio/betahub-mcp/api"
)

type projectView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

type projectsEnvelope struct {
	Projects   []projectView `json:"projects"`
	TotalCount int           `json:"total_count"`
}

// ListProjects lists all projects accessible to the authenticated user.
func (t *Toolset) ListProjects(ctx context.Context) (string, error) {
	var raw json.RawMessage
	if err := t.client.Get(ctx, "projects.json", &raw); err != nil {
		// no per-resource 404 mapping here: there is no id to report
		return "", failure.New(ErrAPI,
			failure.Message("Failed to fetch projects: "+err.Error()),
		)
	}

	projects := decodeProjects(raw)

	views := lo.Map(projects, func(p api.Project, _ int) projectView {
		url := p.URL
		if url == "" {
			url = t.cfg.BaseURL + "projects/" + p.ID
		}
		return projectView{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			URL:         url,
			MemberCount: p.MemberCount,
			CreatedAt:   p.CreatedAt,
		}
	})

	return jsonText(projectsEnvelope{
		Projects:   views,
		TotalCount: len(views),
	})
}

// decodeProjects accepts both upstream shapes: a bare array or an
// object carrying a projects field.
func decodeProjects(raw json.RawMessage) []api.Project {
	var list []api.Project
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var obj struct {
		Projects []api.Project `json:"projects"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Projects
	}
	return nil
}
