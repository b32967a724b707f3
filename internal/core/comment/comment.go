// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package comment implements the discussion threads attached to articles.
package comment

import "github.com/taibuivan/newsdesk/pkg/timestamp"

// Comment is a single reply posted under an article.
type Comment struct {
	ID        int64          `json:"comment_id"`
	ArticleID int64          `json:"article_id"`
	Author    string         `json:"author"`
	Body      string         `json:"body"`
	Votes     int64          `json:"votes"`
	CreatedAt timestamp.Time `json:"created_at"`
}

// Thread is every comment of one article, newest first.
type Thread struct {
	Comments     []*Comment `json:"comments"`
	CommentCount int64      `json:"comment_count"`
}

// CreateInput is the request body for posting a comment.
type CreateInput struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}
