package tools

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"github.com/betahubio/betahub-mcp/api"
)

const (
	defaultSuggestionSort  = "top"
	defaultSuggestionLimit = 25
)

// ListSuggestionsInput is the listSuggestions tool input.
type ListSuggestionsInput struct {
	ProjectID     string `mapstructure:"projectId" validate:"required"`
	Sort          string `mapstructure:"sort" validate:"omitempty,oneof=top new all moderation rejected muted duplicates"`
	Page          int    `mapstructure:"page" validate:"omitempty,min=1"`
	Limit         int    `mapstructure:"limit" validate:"omitempty,min=1,max=25"`
	Status        string `mapstructure:"status" validate:"omitempty,oneof=pending approved rejected in_progress completed duplicate"`
	CreatedAfter  string `mapstructure:"createdAfter" validate:"omitempty,dateparse"`
	CreatedBefore string `mapstructure:"createdBefore" validate:"omitempty,dateparse"`
	UpdatedAfter  string `mapstructure:"updatedAfter" validate:"omitempty,dateparse"`
	UpdatedBefore string `mapstructure:"updatedBefore" validate:"omitempty,dateparse"`
}

type featureRequestView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status"`
	Votes           int       `json:"votes"`
	Voted           bool      `json:"voted"`
	IsDuplicate     bool      `json:"is_duplicate"`
	DuplicatesCount int       `json:"duplicates_count"`
	User            *api.User `json:"user,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at,omitempty"`
	URL             string    `json:"url,omitempty"`
}

type dateFilters struct {
	Status        string `json:"status,omitempty"`
	CreatedAfter  string `json:"created_after,omitempty"`
	CreatedBefore string `json:"created_before,omitempty"`
	UpdatedAfter  string `json:"updated_after,omitempty"`
	UpdatedBefore string `json:"updated_before,omitempty"`
}

type suggestionsEnvelope struct {
	FeatureRequests []featureRequestView `json:"feature_requests"`
	Pagination      api.Pagination       `json:"pagination"`
	Sort            string               `json:"sort"`
	Filters         dateFilters          `json:"filters"`
	ProjectID       string               `json:"project_id"`
}

// ListSuggestions lists feature requests (suggestions) from a project.
// The limit is enforced client side: upstream pages at its own size and
// the returned list is truncated when it exceeds the requested limit.
func (t *Toolset) ListSuggestions(ctx context.Context, in ListSuggestionsInput) (string, error) {
	if err := validate.StructCtx(ctx, in); err != nil {
		return "", validationError(err)
	}

	sort := in.Sort
	if sort == "" {
		sort = defaultSuggestionSort
	}
	page := in.Page
	if page == 0 {
		page = 1
	}
	limit := in.Limit
	if limit == 0 {
		limit = defaultSuggestionLimit
	}

	var q queryParams
	if sort != defaultSuggestionSort {
		q.add("sort", sort)
	}
	if page != 1 {
		q.add("page", strconv.Itoa(page))
	}
	if in.Status != "" {
		q.add("status", in.Status)
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

	endpoint := appendQuery("projects/"+in.ProjectID+"/feature_requests.json", &q)

	var resp api.FeatureRequestsResponse
	if err := t.client.Get(ctx, endpoint, &resp); err != nil {
		return "", translateAPIError(err, "fetch feature requests",
			resourceRef{"Project", in.ProjectID}, resourceRef{"project", in.ProjectID})
	}

	requests := resp.FeatureRequests
	if limit < defaultSuggestionLimit && len(requests) > limit {
		requests = requests[:limit]
	}

	views := lo.Map(requests, func(fr api.FeatureRequest, _ int) featureRequestView {
		return featureRequestView{
			ID:              fr.ID,
			Title:           fr.Title,
			Description:     fr.Description,
			Status:          fr.Status,
			Votes:           fr.Votes,
			Voted:           fr.Voted,
			IsDuplicate:     fr.IsDuplicate,
			DuplicatesCount: fr.DuplicatesCount,
			User:            fr.User,
			CreatedAt:       fr.CreatedAt,
			UpdatedAt:       fr.UpdatedAt,
			URL:             fr.URL,
		}
	})

	pagination := ensurePagination(resp.Pagination, len(requests), defaultSuggestionLimit)
	if limit < pagination.PerPage {
		pagination.PerPage = limit
	}

	return jsonText(suggestionsEnvelope{
		FeatureRequests: views,
		Pagination:      pagination,
		Sort:            sort,
		Filters: dateFilters{
			Status:        in.Status,
			CreatedAfter:  in.CreatedAfter,
			CreatedBefore: in.CreatedBefore,
			UpdatedAfter:  in.UpdatedAfter,
			UpdatedBefore: in.UpdatedBefore,
		},
		ProjectID: in.ProjectID,
	})
}
