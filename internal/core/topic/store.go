// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package topic

import "context"

// Repository is the persistence contract for topics.
type Repository interface {
	List(ctx context.Context) ([]*Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
	ExistsByDescription(ctx context.Context, description string) (bool, error)
	Create(ctx context.Context, topic *Topic) error
}
