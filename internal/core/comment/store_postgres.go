// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

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

var commentColumns = strings.Join(schema.NewsComment.Columns(), ", ")

func (repository *PostgresRepository) ListByArticle(ctx context.Context, articleID int64) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC`,
		commentColumns, schema.NewsComment.Table,
		schema.NewsComment.ArticleID,
		schema.NewsComment.CreatedAt, schema.NewsComment.ID,
	)

	rows, err := repository.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		comment := &Comment{}
		if err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.Author,
			&comment.Body, &comment.Votes, &comment.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_comments")
	}
	return comments, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s`,
		schema.NewsComment.Table,
		schema.NewsComment.ArticleID, schema.NewsComment.Author, schema.NewsComment.Body,
		commentColumns,
	)

	err := repository.db.QueryRow(ctx, query, comment.ArticleID, comment.Author, comment.Body).Scan(
		&comment.ID, &comment.ArticleID, &comment.Author,
		&comment.Body, &comment.Votes, &comment.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_comment")
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.NewsComment.Table, schema.NewsComment.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
