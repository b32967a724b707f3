// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-endpoint query parameters that are shared across
// resources, such as the sort direction.
package query

import "strings"

// Direction is a whitelisted SQL sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"

	// DefaultDirection applies when the caller omits the order parameter.
	DefaultDirection = Desc
)

// ParseDirection resolves a raw order parameter case-insensitively.
//
// An empty value yields [DefaultDirection]. Anything other than asc/desc
// reports ok=false.
func ParseDirection(raw string) (Direction, bool) {
	if raw == "" {
		return DefaultDirection, true
	}

	switch Direction(strings.ToUpper(raw)) {
	case Asc:
		return Asc, true
	case Desc:
		return Desc, true
	}
	return "", false
}
