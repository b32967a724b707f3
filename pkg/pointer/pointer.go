// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides a generic helper for optional values.

Optional JSON fields (e.g. an article's comment_count, which is omitted from
some responses) are modelled as pointers; [To] keeps the call sites
free of temporary variables.
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}
