package helpers

import (
	"net/http"
	"strconv"

	"rsvpportal/internal/domain"
)

// ParsePagination reads page and limit from the request query string and
// returns normalized domain.PaginationParams. Invalid or missing values fall
// back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	var p domain.PaginationParams
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		p.Limit = v
	}
	return p.Normalize()
}

// QueryBool reports whether the query parameter name is set to a true value.
func QueryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
