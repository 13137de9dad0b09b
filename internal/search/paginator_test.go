package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ClosetCoderSad/VisionScout/internal/models"
)

func makeListings(n int) []models.Listing {
	out := make([]models.Listing, n)
	for i := range out {
		out[i] = models.Listing{ID: fmt.Sprintf("l-%d", i), Kind: models.KindProperty, Property: &models.PropertyDetails{}}
	}
	return out
}

func TestPaginator_TotalPagesNeverBelowOne(t *testing.T) {
	p := NewPaginator(9)

	assert.Equal(t, 1, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 1, p.TotalPages(9))
	assert.Equal(t, 2, p.TotalPages(10))
	assert.Equal(t, 3, p.TotalPages(19))
}

func TestPaginator_SliceNeverExceedsPageSize(t *testing.T) {
	p := NewPaginator(9)

	for _, n := range []int{0, 1, 8, 9, 10, 25} {
		listings := makeListings(n)
		p.Reset()
		for page := 1; page <= p.TotalPages(n); page++ {
			p.SetPage(page, p.TotalPages(n))
			assert.LessOrEqual(t, len(p.Slice(listings)), 9)
		}
	}
}

func TestPaginator_SetPageClampsToRange(t *testing.T) {
	p := NewPaginator(9)
	total := p.TotalPages(25) // 3 pages

	assert.False(t, p.SetPage(0, total))
	assert.Equal(t, 1, p.Page())

	assert.False(t, p.SetPage(4, total))
	assert.Equal(t, 1, p.Page())

	assert.True(t, p.SetPage(3, total))
	assert.Equal(t, 3, p.Page())
}

func TestPaginator_Reset(t *testing.T) {
	p := NewPaginator(9)
	p.SetPage(2, p.TotalPages(20))
	assert.Equal(t, 2, p.Page())

	p.Reset()
	assert.Equal(t, 1, p.Page())
}

func TestPaginator_SliceContents(t *testing.T) {
	p := NewPaginator(9)
	listings := makeListings(12)

	first := p.Slice(listings)
	assert.Len(t, first, 9)
	assert.Equal(t, "l-0", first[0].ID)

	p.SetPage(2, p.TotalPages(len(listings)))
	second := p.Slice(listings)
	assert.Len(t, second, 3)
	assert.Equal(t, "l-9", second[0].ID)
}

func TestPaginator_SliceEmptyCollection(t *testing.T) {
	p := NewPaginator(9)
	assert.Empty(t, p.Slice(nil))
}
