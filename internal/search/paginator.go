package search

import "github.com/ClosetCoderSad/VisionScout/internal/models"

// DefaultPageSize is the fixed number of listings per page.
const DefaultPageSize = 9

// Paginator slices a filtered collection into fixed-size pages. The current
// page is 1-based; navigation outside [1, TotalPages] is a no-op rather than
// an error, and any upstream change is expected to Reset the position.
type Paginator struct {
	pageSize int
	page     int
}

// NewPaginator creates a paginator positioned on page 1.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, page: 1}
}

// Page returns the current 1-based page.
func (p *Paginator) Page() int {
	return p.page
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// TotalPages returns the page count for a collection of the given size,
// never less than 1 even for an empty collection.
func (p *Paginator) TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + p.pageSize - 1) / p.pageSize
}

// SetPage moves to the given page if it lies within [1, totalPages] and
// reports whether the position changed.
func (p *Paginator) SetPage(page, totalPages int) bool {
	if page < 1 || page > totalPages || page == p.page {
		return false
	}
	p.page = page
	return true
}

// Reset returns the paginator to page 1.
func (p *Paginator) Reset() {
	p.page = 1
}

// Slice returns the listings visible on the current page.
func (p *Paginator) Slice(listings []models.Listing) []models.Listing {
	start := (p.page - 1) * p.pageSize
	if start >= len(listings) {
		return nil
	}
	end := start + p.pageSize
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}
