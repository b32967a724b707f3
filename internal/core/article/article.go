// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package article implements the article catalogue: browsing with filters,
// sorting and pagination, creation, vote increments and deletion.
//
// # Response shapes
//
// The list view ([Summary]) omits the body and reports comment_count as a
// string; the single-article view ([Article]) reports it as a number. Both
// shapes are relied upon by existing clients.
package article

import (
	"encoding/json"

	"github.com/taibuivan/newsdesk/pkg/timestamp"
)

// DefaultImageURL is stored when an article is created without an image.
const DefaultImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is the full representation of a stored article.
type Article struct {
	ID        int64          `json:"article_id"`
	Title     string         `json:"title"`
	Topic     string         `json:"topic"`
	Author    string         `json:"author"`
	Body      string         `json:"body"`
	CreatedAt timestamp.Time `json:"created_at"`
	Votes     int64          `json:"votes"`
	ImageURL  string         `json:"article_img_url"`

	// CommentCount is populated on reads and creation; vote updates leave it nil.
	CommentCount *int64 `json:"comment_count,omitempty"`
}

// Summary is one row of the article list.
type Summary struct {
	ID           int64          `json:"article_id"`
	Title        string         `json:"title"`
	Topic        string         `json:"topic"`
	Author       string         `json:"author"`
	CreatedAt    timestamp.Time `json:"created_at"`
	Votes        int64          `json:"votes"`
	ImageURL     string         `json:"article_img_url"`
	CommentCount int64          `json:"comment_count,string"`
}

// Page is a single page of the article list plus the size of the whole filtered set.
type Page struct {
	Articles   []*Summary `json:"articles"`
	TotalCount int64      `json:"total_count,string"`
}

// CreateInput is the request body for creating an article.
type CreateInput struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Topic    string `json:"topic"`
	Username string `json:"username"`
	ImageURL string `json:"article_img_url"`
}

// VoteInput is the request body for a vote increment.
//
// IncVotes is kept raw so that floats, strings and null are rejected instead
// of being coerced by the decoder.
type VoteInput struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}
