package tools

import "github.com/betahubio/betahub-mcp/api"

// ensurePagination returns a pagination block even when the upstream
// response lacks one: each missing field falls back to page 1, a single
// total page, the returned list length and the requested page size.
func ensurePagination(p *api.Pagination, count, perPage int) api.Pagination {
	out := api.Pagination{
		CurrentPage: 1,
		TotalPages:  1,
		TotalCount:  count,
		PerPage:     perPage,
	}
	if p == nil {
		return out
	}
	if p.CurrentPage > 0 {
		out.CurrentPage = p.CurrentPage
	}
	if p.TotalPages > 0 {
		out.TotalPages = p.TotalPages
	}
	if p.TotalCount > 0 {
		out.TotalCount = p.TotalCount
	}
	if p.PerPage > 0 {
		out.PerPage = p.PerPage
	}
	return out
}
