package ports

import "math"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	// MaxPage keeps Offset from overflowing int at any limit.
	MaxPage = math.MaxInt / MaxPageLimit
)

// Pagination selects a 1-based page of at most Limit rows.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize applies defaults and caps the page at MaxPage and the limit at MaxPageLimit.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset is the number of rows to skip. Call on a normalized value.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes the page that was returned.
type PageMeta struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewPageMeta builds the metadata for a normalized page over total rows.
func NewPageMeta(p Pagination, total int64) PageMeta {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return PageMeta{Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}

// Window returns the slice of items that falls on page p. p must be normalized.
func Window[T any](items []T, p Pagination) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
