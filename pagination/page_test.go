package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest_Clamping(t *testing.T) {
	req := NewRequest(-1, 0)
	assert.Equal(t, 0, req.Page)
	assert.Equal(t, DefaultSize, req.Size)

	req = NewRequest(3, 25)
	assert.Equal(t, 75, req.Offset())
}

func TestNewPage_TotalPagesIsCeil(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		pages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{21, 10, 3},
	}
	for _, c := range cases {
		page := NewPage([]int{}, NewRequest(0, c.size), c.total)
		assert.Equal(t, c.pages, page.TotalPages, "total=%d size=%d", c.total, c.size)
	}
}

func TestNewPage_NilContentBecomesEmptySlice(t *testing.T) {
	page := NewPage[int](nil, NewRequest(0, 10), 0)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
}

func TestEmpty(t *testing.T) {
	page := Empty[string](NewRequest(2, 5))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Size)
	assert.Zero(t, page.TotalElements)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Content)
}
