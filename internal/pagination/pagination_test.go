package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxi_service/internal/pagination"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw    string
		number int
		last   bool
	}{
		{raw: "", number: 1},
		{raw: "2", number: 2},
		{raw: " 3 ", number: 3},
		{raw: "abc", number: 1},
		{raw: "-4", number: -4},
		{raw: "last", last: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			req := pagination.ParseRequest(tc.raw, pagination.DefaultPageSize)
			assert.Equal(t, tc.number, req.Number)
			assert.Equal(t, tc.last, req.Last)
			assert.Equal(t, pagination.DefaultPageSize, req.Size)
		})
	}

	t.Run("non-positive size falls back to the default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pagination.DefaultPageSize, pagination.ParseRequest("1", 0).Size)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		total    int64
		req      pagination.Request
		number   int
		numPages int
		offset   int
	}{
		{name: "first page", total: 11, req: pagination.Request{Number: 1, Size: 5}, number: 1, numPages: 3, offset: 0},
		{name: "middle page", total: 11, req: pagination.Request{Number: 2, Size: 5}, number: 2, numPages: 3, offset: 5},
		{name: "partial last page", total: 11, req: pagination.Request{Number: 3, Size: 5}, number: 3, numPages: 3, offset: 10},
		{name: "beyond last clamps to last", total: 11, req: pagination.Request{Number: 99, Size: 5}, number: 3, numPages: 3, offset: 10},
		{name: "zero clamps to first", total: 11, req: pagination.Request{Number: 0, Size: 5}, number: 1, numPages: 3, offset: 0},
		{name: "negative clamps to first", total: 11, req: pagination.Request{Number: -7, Size: 5}, number: 1, numPages: 3, offset: 0},
		{name: "last keyword", total: 11, req: pagination.Request{Last: true, Size: 5}, number: 3, numPages: 3, offset: 10},
		{name: "exact multiple", total: 10, req: pagination.Request{Number: 2, Size: 5}, number: 2, numPages: 2, offset: 5},
		{name: "empty collection has one page", total: 0, req: pagination.Request{Number: 4, Size: 5}, number: 1, numPages: 1, offset: 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := pagination.Resolve(tc.total, tc.req)
			assert.Equal(t, tc.number, w.Number)
			assert.Equal(t, tc.numPages, w.NumPages)
			assert.Equal(t, tc.offset, w.Offset)
			assert.Equal(t, 5, w.Limit())
		})
	}
}

func TestWindowMeta(t *testing.T) {
	t.Parallel()

	m := pagination.Resolve(11, pagination.Request{Number: 2, Size: 5}).Meta()
	assert.True(t, m.IsPaginated)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrevious)
	assert.Equal(t, 3, m.NextNumber)
	assert.Equal(t, 1, m.PreviousNumber)
	assert.Equal(t, int64(11), m.Count)

	single := pagination.Resolve(5, pagination.Request{Number: 1, Size: 5}).Meta()
	assert.False(t, single.IsPaginated)
	assert.False(t, single.HasNext)
	assert.False(t, single.HasPrevious)
}

func TestSlice(t *testing.T) {
	t.Parallel()

	all := make([]int, 11)
	for i := range all {
		all[i] = i + 1
	}

	page := pagination.Slice(all, pagination.Request{Number: 1, Size: 5})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, page.Items)
	assert.True(t, page.Pagination.IsPaginated)

	page = pagination.Slice(all, pagination.Request{Number: 2, Size: 5})
	assert.Equal(t, []int{6, 7, 8, 9, 10}, page.Items)

	page = pagination.Slice(all, pagination.Request{Number: 40, Size: 5})
	assert.Equal(t, []int{11}, page.Items)
	assert.Equal(t, 3, page.Pagination.Number)

	empty := pagination.Slice([]string(nil), pagination.Request{Number: 2, Size: 5})
	require.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.Pagination.Number)
	assert.False(t, empty.Pagination.IsPaginated)
}
