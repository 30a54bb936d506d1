package tools

import (
	"net/url"
	"strings"
)

// queryParams builds a query string preserving parameter order, which
// url.Values does not. Upstream expects parameters in declaration order
// and default-valued parameters omitted entirely.
type queryParams struct {
	pairs []string
}

func (q *queryParams) add(key, value string) {
	q.pairs = append(q.pairs, key+"="+url.QueryEscape(value))
}

func (q *queryParams) encode() string {
	return strings.Join(q.pairs, "&")
}

// appendQuery attaches an encoded query string to an endpoint when one
// is present.
func appendQuery(endpoint string, q *queryParams) string {
	if qs := q.encode(); qs != "" {
		return endpoint + "?" + qs
	}
	return endpoint
}
