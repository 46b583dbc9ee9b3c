package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	assert.Equal(t, Request{Page: 1, PageSize: 10}, NewRequest(0, 0))
	assert.Equal(t, Request{Page: 3, PageSize: 25}, NewRequest(3, 25))
	assert.Equal(t, Request{Page: 1, PageSize: MaxPageSize}, NewRequest(-2, 5000))
}

func TestFromQuery(t *testing.T) {
	assert.Equal(t, Request{Page: 2, PageSize: 5}, FromQuery("2", "5"))
	assert.Equal(t, Request{Page: 1, PageSize: 10}, FromQuery("abc", ""))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, NewRequest(1, 10).Offset())
	assert.Equal(t, 20, NewRequest(3, 10).Offset())
}

func TestNewResult_TotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{999, 100, 10},
	}
	for _, tc := range cases {
		res := NewResult(tc.total, NewRequest(1, tc.size))
		assert.Equal(t, tc.want, res.TotalPages, "total=%d size=%d", tc.total, tc.size)
	}
}

func TestFromQuery_HugePageKeepsOffsetPositive(t *testing.T) {
	req := FromQuery("1000000000000000000", "10")

	assert.Positive(t, req.Offset())
	assert.Equal(t, math.MaxInt/10+1, req.Page)

	res := NewResult(3, req)
	assert.Equal(t, req.Page, res.Page)
}
