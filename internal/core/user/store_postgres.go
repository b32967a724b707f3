// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectUser = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.NewsUser.Columns(), ", "), schema.NewsUser.Table)

func (repository *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	query := selectUser + fmt.Sprintf(` ORDER BY %s ASC`, schema.NewsUser.Username)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(&user.Username, &user.Name, &user.AvatarURL); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_users")
	}
	return users, nil
}

func (repository *PostgresRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := selectUser + fmt.Sprintf(` WHERE %s = $1`, schema.NewsUser.Username)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, username).Scan(&user.Username, &user.Name, &user.AvatarURL)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}
	return user, nil
}

func (repository *PostgresRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.NewsUser.Table, schema.NewsUser.Username)

	var found bool
	if err := repository.db.QueryRow(ctx, query, username).Scan(&found); err != nil {
		return false, dberr.Wrap(err, "user_exists")
	}
	return found, nil
}
