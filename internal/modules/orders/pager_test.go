package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 5), "empty list still has one page")
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(12, 5))
	assert.Equal(t, 3, TotalPages(15, 5))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-4, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(5, 3), "past-the-end lands on the last page")
}

func TestPageSlice(t *testing.T) {
	list := make([]Order, 12)
	for i := range list {
		list[i].ID = i + 1
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(PageSlice(list, 1, 5)))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, ids(PageSlice(list, 2, 5)))
	assert.Equal(t, []int{11, 12}, ids(PageSlice(list, 3, 5)), "last page is partial")
	assert.Empty(t, PageSlice(list, 4, 5))
	assert.Empty(t, PageSlice(nil, 1, 5))
}

func TestBuildPaginationWindow(t *testing.T) {
	p := BuildPagination(1, 3)
	assert.True(t, p.PrevDisabled)
	assert.False(t, p.NextDisabled)
	assert.Equal(t, []PageButton{{1, true}, {2, false}, {3, false}}, p.Buttons)

	p = BuildPagination(3, 3)
	assert.False(t, p.PrevDisabled)
	assert.True(t, p.NextDisabled)

	// Ten pages never show more than five buttons, centered on the
	// current page when there is room.
	p = BuildPagination(6, 10)
	assert.Equal(t, []PageButton{{4, false}, {5, false}, {6, true}, {7, false}, {8, false}}, p.Buttons)

	p = BuildPagination(10, 10)
	assert.Equal(t, []PageButton{{6, false}, {7, false}, {8, false}, {9, false}, {10, true}}, p.Buttons)

	p = BuildPagination(1, 10)
	assert.Equal(t, []PageButton{{1, true}, {2, false}, {3, false}, {4, false}, {5, false}}, p.Buttons)
}

func TestBuildPaginationSinglePage(t *testing.T) {
	p := BuildPagination(1, 1)
	assert.True(t, p.PrevDisabled)
	assert.True(t, p.NextDisabled)
	assert.Equal(t, []PageButton{{1, true}}, p.Buttons)
}
