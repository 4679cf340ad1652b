package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	q := PaginateQuery{}
	q.Adjust()
	assert.Equal(t, PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}, q)

	q = PaginateQuery{Page: 3, Limit: 1000}
	q.Adjust()
	assert.Equal(t, int64(MaxLimit), q.Limit)
	assert.Equal(t, int64(200), q.Offset())
}

func TestToResponse(t *testing.T) {
	q := PaginateQuery{Page: 2, Limit: 10}
	resp := New(q, 25, 10).ToResponse()

	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	last := New(PaginateQuery{Page: 3, Limit: 10}, 25, 5).ToResponse()
	assert.False(t, last.HasNext)

	empty := New(PaginateQuery{Page: 1, Limit: 10}, 0, 0).ToResponse()
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasPrev)
}
