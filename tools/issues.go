package tools

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"github.com/betahubio/betahub-mcp/api"
)

const defaultIssuesPerPage = 20

// ListIssuesInput is the listIssues tool input.
type ListIssuesInput struct {
	ProjectID     string `mapstructure:"projectId" validate:"required"`
	Status        string `mapstructure:"status" validate:"omitempty,oneof=new in_progress needs_more_info resolved closed wont_fix"`
	Priority      string `mapstructure:"priority" validate:"omitempty,oneof=low medium high critical"`
	Page          int    `mapstructure:"page" validate:"omitempty,min=1"`
	PerPage       int    `mapstructure:"perPage" validate:"omitempty,min=1,max=100"`
	CreatedAfter  string `mapstructure:"createdAfter" validate:"omitempty,dateparse"`
	CreatedBefore string `mapstructure:"createdBefore" validate:"omitempty,dateparse"`
	UpdatedAfter  string `mapstructure:"updatedAfter" validate:"omitempty,dateparse"`
	UpdatedBefore string `mapstructure:"updatedBefore" validate:"omitempty,dateparse"`
	TagIDs        string `mapstructure:"tagIds"`
}

type issueView struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	Score              float64   `json:"score"`
	StepsToReproduce   []string  `json:"steps_to_reproduce,omitempty"`
	AssignedTo         *api.User `json:"assigned_to,omitempty"`
	ReportedBy         *api.User `json:"reported_by,omitempty"`
	PotentialDuplicate string    `json:"potential_duplicate,omitempty"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at,omitempty"`
	URL                string    `json:"url,omitempty"`
}

type issueFilters struct {
	Status        string `json:"status,omitempty"`
	Priority      string `json:"priority,omitempty"`
	CreatedAfter  string `json:"created_after,omitempty"`
	CreatedBefore string `json:"created_before,omitempty"`
	UpdatedAfter  string `json:"updated_after,omitempty"`
	UpdatedBefore string `json:"updated_before,omitempty"`
	TagIDs        string `json:"tag_ids,omitempty"`
}

type issuesEnvelope struct {
	Issues     []issueView    `json:"issues"`
	Pagination api.Pagination `json:"pagination"`
	Filters    issueFilters   `json:"filters"`
	ProjectID  string         `json:"project_id"`
}

// ListIssues lists issues (bug reports) from a project. The applied
// filters are echoed back in the envelope for caller introspection.
func (t *Toolset) ListIssues(ctx context.Context, in ListIssuesInput) (string, error) {
	if err := validate.StructCtx(ctx, in); err != nil {
		return "", validationError(err)
	}

	page := in.Page
	if page == 0 {
		page = 1
	}
	perPage := in.PerPage
	if perPage == 0 {
		perPage = defaultIssuesPerPage
	}

	var q queryParams
	if page != 1 {
		q.add("page", strconv.Itoa(page))
	}
	if perPage != defaultIssuesPerPage {
		q.add("per_page", strconv.Itoa(perPage))
	}
	if in.Status != "" {
		q.add("status", in.Status)
	}
	if in.Priority != "" {
		q.add("priority", in.Priority)
	}
	if in.CreatedAfter != "" {
		q.add("created_after", in.CreatedAfter)
	}
	if in.CreatedBefore != "" {
		q.add("created_before", in.CreatedBefore)
	}
	if in.UpdatedAfter != "" {
		q.add("updated_after", in.UpdatedAfter)
	}
	if in.UpdatedBefore != "" {
		q.add("updated_before", in.UpdatedBefore)
	}
	if in.TagIDs != "" {
		q.add("tag_ids", in.TagIDs)
	}

	endpoint := appendQuery("projects/"+in.ProjectID+"/issues.json", &q)

	var resp api.IssuesResponse
	if err := t.client.Get(ctx, endpoint, &resp); err != nil {
		return "", translateAPIError(err, "fetch issues",
			resourceRef{"Project", in.ProjectID}, resourceRef{"project", in.ProjectID})
	}

	views := lo.Map(resp.Issues, func(issue api.Issue, _ int) issueView {
		return issueView{
			ID:                 issue.ID,
			Title:              issue.Title,
			Description:        issue.Description,
			Status:             issue.Status,
			Priority:           issue.Priority,
			Score:              issue.Score,
			StepsToReproduce:   issue.StepsToReproduce,
			AssignedTo:         issue.AssignedTo,
			ReportedBy:         issue.ReportedBy,
			PotentialDuplicate: issue.PotentialDuplicate,
			CreatedAt:          issue.CreatedAt,
			UpdatedAt:          issue.UpdatedAt,
			URL:                issue.URL,
		}
	})

	return jsonText(issuesEnvelope{
		Issues:     views,
		Pagination: ensurePagination(resp.Pagination, len(resp.Issues), perPage),
		Filters: issueFilters{
			Status:        in.Status,
			Priority:      in.Priority,
			CreatedAfter:  in.CreatedAfter,
			CreatedBefore: in.CreatedBefore,
			UpdatedAfter:  in.UpdatedAfter,
			UpdatedBefore: in.UpdatedBefore,
			TagIDs:        in.TagIDs,
		},
		ProjectID: in.ProjectID,
	})
}
