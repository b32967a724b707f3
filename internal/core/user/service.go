// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"errors"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
)

// Service implements the read-only user use cases.
type Service struct {
	repo Repository
}

// NewService wires a user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every user ordered by username.
func (service *Service) List(ctx context.Context) ([]*User, error) {
	return service.repo.List(ctx)
}

// Get returns a single user or the "User does not exist" 404.
func (service *Service) Get(ctx context.Context, username string) (*User, error) {
	user, err := service.repo.FindByUsername(ctx, username)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.ErrUserNotFound
	}
	return user, err
}
