// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/newsdesk/pkg/pagination"
)

func TestFromValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 10}},
		{"explicit_page", "page=2", pagination.Params{Page: 2, Limit: 10}},
		{"explicit_limit", "page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"garbage_page", "page=abc", pagination.Params{Page: 1, Limit: 10}},
		{"zero_page", "page=0", pagination.Params{Page: 1, Limit: 10}},
		{"limit_over_max", "limit=1000", pagination.Params{Page: 1, Limit: 10}},
		{"negative_limit", "limit=-4", pagination.Params{Page: 1, Limit: 10}},
		{"page_max_int64", "page=9223372036854775807", pagination.Params{Page: 1, Limit: 10}},
		{"page_offset_overflows", "page=1844674407370955162&limit=10", pagination.Params{Page: 1, Limit: 10}},
		{"page_beyond_int64", "page=99999999999999999999", pagination.Params{Page: 1, Limit: 10}},
		{"largest_safe_page", "page=1000000&limit=100", pagination.Params{Page: 1000000, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, pagination.FromValues(values))
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
}

func TestParams_Offset_Saturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, pagination.Params{Page: math.MaxInt, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 3, Limit: 0}.Offset())
}

func TestFromValues_OffsetNeverNegative(t *testing.T) {
	for _, page := range []string{"9223372036854775807", "1844674407370955162", "922337203685477581"} {
		values := url.Values{"page": {page}, "limit": {"100"}}
		assert.GreaterOrEqual(t, pagination.FromValues(values).Offset(), 0, page)
	}
}
