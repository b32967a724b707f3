// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr

import "fmt"

// # Error Catalogue
//
// The API exposes a closed set of (status, message) pairs. Clients match on the
// message text, so these strings are part of the public contract.

// Malformed input (400).
var (
	ErrInvalidSyntax    = BadRequest("Invalid input syntax")
	ErrInvalidArticleID = BadRequest("Invalid article_id")
	ErrInvalidVotes     = BadRequest("Invalid votes increment")
	ErrUnknownSort      = BadRequest("Sort parameter does not exist")
	ErrUnknownOrder     = BadRequest("Order parameter does not exist")
	ErrInvalidJSON      = BadRequest("Invalid JSON payload")

	// ErrEmptyComment is a 400 rather than a 422; existing clients depend on it.
	ErrEmptyComment = BadRequest("Comment body and username cannot be empty")
)

// Missing entities (404).
var (
	ErrItemNotFound    = NotFound("item does not exist")
	ErrArticleNotFound = NotFound("Article does not exist")
	ErrCommentNotFound = NotFound("Comment does not exist")
	ErrTopicNotFound   = NotFound("Topic does not exist")
	ErrUserNotFound    = NotFound("User does not exist")
	ErrPathNotFound    = NotFound("path is not found")
)

// Unprocessable payloads (422).
var (
	ErrEmptyArticle         = Unprocessable("Article body, title, topic and author cannot be empty")
	ErrEmptyTopic           = Unprocessable("Slug and description cannot be empty")
	ErrDuplicateSlug        = Unprocessable("Topic with the same slug already exists")
	ErrDuplicateDescription = Unprocessable("Topic with the same description already exists")
)

// ArticleIDNotFound is the delete-article miss. The message echoes the
// identifier exactly as the caller supplied it.
func ArticleIDNotFound(rawID string) *AppError {
	return NotFound(fmt.Sprintf("Article %s does not exist", rawID))
}
