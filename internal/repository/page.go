package repository

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageRequest is a 1-based page plus a page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the request into valid bounds.
func (p PageRequest) Normalize() PageRequest {
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

func (p PageRequest) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.Limit
}

// Page is one page of results plus the total across all pages.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	TotalItems int64
}

func (p *Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	pages := p.TotalItems / int64(p.Limit)
	if p.TotalItems%int64(p.Limit) != 0 {
		pages++
	}
	return int(pages)
}
