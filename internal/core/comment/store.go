// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "context"

// Repository is the persistence contract for comments.
type Repository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]*Comment, error)
	Create(ctx context.Context, comment *Comment) error

	// Delete returns dberr.ErrNotFound when no comment has the given id.
	Delete(ctx context.Context, id int64) error
}
