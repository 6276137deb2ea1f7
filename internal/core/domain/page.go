package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one page of a list result.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// PageRequest carries the paging and free-text part of every list filter.
type PageRequest struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize clamps page to >= 1 and page size to [1, MaxPageSize].
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset of a normalized request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}
