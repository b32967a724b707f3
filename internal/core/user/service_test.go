// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
)

type fakeRepository struct {
	users map[string]*User
}

func (f *fakeRepository) List(context.Context) ([]*User, error) {
	users := make([]*User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return user, nil
}

func (f *fakeRepository) Exists(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func TestService_Get(t *testing.T) {
	service := NewService(&fakeRepository{users: map[string]*User{
		"butter_bridge": {Username: "butter_bridge", Name: "jonny"},
	}})

	user, err := service.Get(context.Background(), "butter_bridge")
	require.NoError(t, err)
	assert.Equal(t, "jonny", user.Name)

	_, err = service.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}
