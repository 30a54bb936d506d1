package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/samber/lo"

	"github.com/betahubio/betahub-mcp/api"
)

// ListReleasesInput is the listReleases tool input.
type ListReleasesInput struct {
	ProjectID string `mapstructure:"projectId" validate:"required"`
}

type releaseView struct {
	ID                 string `json:"id"`
	Label              string `json:"label"`
	Summary            string `json:"summary,omitempty"`
	Description        string `json:"description,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at,omitempty"`
	DownloadLink       string `json:"download_link,omitempty"`
	DynamicallyCreated bool   `json:"dynamically_created"`
	URL                string `json:"url"`
}

type releasesEnvelope struct {
	Releases   []releaseView `json:"releases"`
	TotalCount int           `json:"total_count"`
	ProjectID  string        `json:"project_id"`
	Message    string        `json:"message,omitempty"`
}

// ListReleases lists all releases for a project. A missing or non-array
// upstream body yields an explicit empty envelope instead of an error.
func (t *Toolset) ListReleases(ctx context.Context, in ListReleasesInput) (string, error) {
	if err := validate.StructCtx(ctx, in); err != nil {
		return "", validationError(err)
	}

	endpoint := "projects/" + in.ProjectID + "/releases.json"
	var raw json.RawMessage
	if err := t.client.Get(ctx, endpoint, &raw); err != nil {
		return "", translateAPIError(err, "fetch releases",
			resourceRef{"Project", in.ProjectID}, resourceRef{"project", in.ProjectID})
	}

	var releases []api.Release
	if err := json.Unmarshal(raw, &releases); err != nil || releases == nil {
		return jsonText(releasesEnvelope{
			Releases:   []releaseView{},
			TotalCount: 0,
			ProjectID:  in.ProjectID,
			Message:    "No releases found for this project",
		})
	}

	base := strings.TrimSuffix(t.cfg.BaseURL, "/")
	views := lo.Map(releases, func(r api.Release, _ int) releaseView {
		return releaseView{
			ID:                 r.ID,
			Label:              r.Label,
			Summary:            r.Summary,
			Description:        r.Description,
			CreatedAt:          r.CreatedAt,
			UpdatedAt:          r.UpdatedAt,
			DownloadLink:       r.DownloadLink,
			DynamicallyCreated: r.DynamicallyCreated,
			URL:                base + "/projects/" + in.ProjectID + "/releases/" + r.ID,
		}
	})

	return jsonText(releasesEnvelope{
		Releases:   views,
		TotalCount: len(views),
		ProjectID:  in.ProjectID,
	})
}
