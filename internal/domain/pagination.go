package domain

// Pagination defaults and limits for list queries.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PaginationParams holds page-based pagination parameters for list queries.
type PaginationParams struct {
	Page  int
	Limit int
}

// Normalize clamps Page to at least 1 and Limit to 1..MaxPageLimit,
// using DefaultPageLimit when Limit is unset.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
