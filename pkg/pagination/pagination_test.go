package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsParams(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: -3, PerPage: 0}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
}

func TestPaginateSlices(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	result := Paginate(items, &PaginationParams{Page: 2, PerPage: 3})

	assert.Equal(t, []int{4, 5, 6}, result.Items)
	assert.Equal(t, int64(7), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	result := Paginate(items, &PaginationParams{Page: 3, PerPage: 3})

	assert.Equal(t, []int{7}, result.Items)
	assert.False(t, result.Pagination.HasNext)
}

func TestPaginateBeyondEnd(t *testing.T) {
	items := []int{1, 2}

	result := Paginate(items, &PaginationParams{Page: 9, PerPage: 10})

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(2), result.Pagination.Total)
}

func TestPaginateEmpty(t *testing.T) {
	result := Paginate([]string(nil), &PaginationParams{Page: 1, PerPage: 15})

	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Pagination.TotalPages)
}
