// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package topic manages the topic catalogue that articles are filed under.
//
// Topics are append-only: they can be listed and created, never edited or
// removed. Both the slug and the description are unique.
package topic

// Topic is a subject area identified by its slug.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CreateInput is the request body for creating a topic.
type CreateInput struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
