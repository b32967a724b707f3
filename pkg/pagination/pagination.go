// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how a page maps onto SQL LIMIT/OFFSET.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Default returns the first page at the default size.
func Default() Params {
	return Params{Page: DefaultPage, Limit: DefaultLimit}
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
// It saturates at [math.MaxInt] instead of wrapping negative.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// FromValues parses "page" and "limit" query parameters.
//
// # Clamping
//
// Invalid, negative, or excessive values fall back to [DefaultPage] or
// [DefaultLimit]. A page whose offset would not fit in an int counts as invalid.
func FromValues(values url.Values) Params {
	page := parseIntParam(values, "page", DefaultPage)
	limit := parseIntParam(values, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	if page-1 > math.MaxInt/limit {
		page = DefaultPage
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(values url.Values, key string, defaultVal int) int {
	raw := values.Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
