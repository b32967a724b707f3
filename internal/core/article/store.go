// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import "context"

// Repository is the persistence contract for articles.
//
// Lookups that miss return dberr.ErrNotFound.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, query Query) ([]*Summary, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Create(ctx context.Context, article *Article) error
	IncrementVotes(ctx context.Context, id int64, delta int64) (*Article, error)

	// Delete removes the article and its comments atomically.
	Delete(ctx context.Context, id int64) error
}
