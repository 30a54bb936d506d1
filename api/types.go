package api

// User identifies the author, assignee or reporter of a resource.
type User struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Project is a BetaHub project record.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// FeatureRequest is a suggestion submitted to a project.
// Status is one of pending, approved, rejected, in_progress, completed,
// duplicate.
type FeatureRequest struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Status          string `json:"status"`
	Votes           int    `json:"votes"`
	Voted           bool   `json:"voted,omitempty"`
	IsDuplicate     bool   `json:"is_duplicate,omitempty"`
	DuplicatesCount int    `json:"duplicates_count,omitempty"`
	User            *User  `json:"user,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at,omitempty"`
	URL             string `json:"url,omitempty"`
}

// Issue is a bug report. Status is one of new, in_progress,
// needs_more_info, resolved, closed, wont_fix; Priority is one of low,
// medium, high, critical.
type Issue struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Status             string   `json:"status"`
	Priority           string   `json:"priority"`
	Score              float64  `json:"score"`
	StepsToReproduce   []string `json:"steps_to_reproduce,omitempty"`
	AssignedTo         *User    `json:"assigned_to,omitempty"`
	ReportedBy         *User    `json:"reported_by,omitempty"`
	PotentialDuplicate string   `json:"potential_duplicate,omitempty"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at,omitempty"`
	URL                string   `json:"url,omitempty"`
}

// IssueTag categorizes issues. A tag with a ParentTagID is a child of
// the referenced top-level tag; depth beyond two levels is not modeled.
type IssueTag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	ParentTagID *int   `json:"parent_tag_id,omitempty"`
}

// Release is a published (or synthesized) project release.
type Release struct {
	ID                 string `json:"id"`
	Label              string `json:"label"`
	Summary            string `json:"summary,omitempty"`
	Description        string `json:"description,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at,omitempty"`
	DownloadLink       string `json:"download_link,omitempty"`
	DynamicallyCreated bool   `json:"dynamically_created"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`
	PerPage     int `json:"per_page"`
}

// FeatureRequestsResponse is the upstream feature_requests.json shape.
type FeatureRequestsResponse struct {
	FeatureRequests []FeatureRequest `json:"feature_requests"`
	Pagination      *Pagination      `json:"pagination,omitempty"`
}

// IssuesResponse is the upstream issues.json shape.
type IssuesResponse struct {
	Issues     []Issue     `json:"issues"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// IssueTagsResponse is the upstream issue_tags.json shape.
type IssueTagsResponse struct {
	Tags []IssueTag `json:"tags"`
}
