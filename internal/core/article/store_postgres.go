// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository creates an article repository backed by db.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// articleColumns lists the full article row, prefixed with the "a" alias.
func articleColumns() string {
	columns := schema.NewsArticle.Columns()
	prefixed := make([]string, len(columns))
	for index, column := range columns {
		prefixed[index] = "a." + column
	}
	return strings.Join(prefixed, ", ")
}

func scanArticle(row pgx.Row, extra ...any) (*Article, error) {
	article := &Article{}
	destinations := []any{
		&article.ID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.ImageURL,
	}
	if err := row.Scan(append(destinations, extra...)...); err != nil {
		return nil, err
	}
	return article, nil
}

// whereClause renders the filter as a WHERE clause and its positional arguments.
func whereClause(filter Filter) (string, []any) {
	conditions := make([]string, 0, 1)
	args := make([]any, 0, 1)

	if filter.Topic != "" {
		args = append(args, filter.Topic)
		conditions = append(conditions, fmt.Sprintf("a.%s = $%d", schema.NewsArticle.Topic, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       (SELECT COUNT(*) FROM %s c WHERE c.%s = a.%s) AS comment_count
		FROM %s a
		WHERE a.%s = $1`,
		articleColumns(),
		schema.NewsComment.Table, schema.NewsComment.ArticleID, schema.NewsArticle.ID,
		schema.NewsArticle.Table,
		schema.NewsArticle.ID,
	)

	var commentCount int64
	article, err := scanArticle(repository.db.QueryRow(ctx, query, id), &commentCount)
	if err != nil {
		return nil, dberr.Wrap(err, "find_article")
	}

	article.CommentCount = &commentCount
	return article, nil
}

func (repository *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.NewsArticle.Table, schema.NewsArticle.ID)

	var found bool
	if err := repository.db.QueryRow(ctx, query, id).Scan(&found); err != nil {
		return false, dberr.Wrap(err, "article_exists")
	}
	return found, nil
}

func (repository *PostgresRepository) List(ctx context.Context, query Query) ([]*Summary, error) {
	where, args := whereClause(query.Filter)
	args = append(args, query.Page.Limit, query.Page.Offset())

	// Sort expression and direction both come from whitelists, never from raw input.
	statement := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		       COUNT(c.%s) AS comment_count
		FROM %s a
		LEFT JOIN %s c ON c.%s = a.%s
		%s
		GROUP BY a.%s
		ORDER BY %s %s, a.%s ASC
		LIMIT $%d OFFSET $%d`,
		schema.NewsArticle.ID, schema.NewsArticle.Title, schema.NewsArticle.Topic, schema.NewsArticle.Author,
		schema.NewsArticle.CreatedAt, schema.NewsArticle.Votes, schema.NewsArticle.ImageURL,
		schema.NewsComment.ID,
		schema.NewsArticle.Table,
		schema.NewsComment.Table, schema.NewsComment.ArticleID, schema.NewsArticle.ID,
		where,
		schema.NewsArticle.ID,
		sortExpressions[query.Sort], query.Order, schema.NewsArticle.ID,
		len(args)-1, len(args),
	)

	rows, err := repository.db.Query(ctx, statement, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	summaries := make([]*Summary, 0, query.Page.Limit)
	for rows.Next() {
		summary := &Summary{}
		if err := rows.Scan(
			&summary.ID, &summary.Title, &summary.Topic, &summary.Author,
			&summary.CreatedAt, &summary.Votes, &summary.ImageURL, &summary.CommentCount,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_article_summary")
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_articles")
	}
	return summaries, nil
}

func (repository *PostgresRepository) Count(ctx context.Context, filter Filter) (int64, error) {
	where, args := whereClause(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s a %s`, schema.NewsArticle.Table, where)

	var total int64
	if err := repository.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_articles")
	}
	return total, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, article *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s AS a (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`,
		schema.NewsArticle.Table,
		schema.NewsArticle.Title, schema.NewsArticle.Topic, schema.NewsArticle.Author,
		schema.NewsArticle.Body, schema.NewsArticle.ImageURL,
		articleColumns(),
	)

	row := repository.db.QueryRow(ctx, query,
		article.Title, article.Topic, article.Author, article.Body, article.ImageURL)

	created, err := scanArticle(row)
	if err != nil {
		return dberr.Wrap(err, "create_article")
	}

	*article = *created
	return nil
}

func (repository *PostgresRepository) IncrementVotes(ctx context.Context, id int64, delta int64) (*Article, error) {
	query := fmt.Sprintf(`
		UPDATE %s AS a SET %s = a.%s + $2
		WHERE a.%s = $1
		RETURNING %s`,
		schema.NewsArticle.Table, schema.NewsArticle.Votes, schema.NewsArticle.Votes,
		schema.NewsArticle.ID,
		articleColumns(),
	)

	article, err := scanArticle(repository.db.QueryRow(ctx, query, id, delta))
	if err != nil {
		return nil, dberr.Wrap(err, "increment_article_votes")
	}
	return article, nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	deleteComments := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.NewsComment.Table, schema.NewsComment.ArticleID)
	deleteArticle := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.NewsArticle.Table, schema.NewsArticle.ID)

	return postgres.InTx(ctx, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteComments, id); err != nil {
			return dberr.Wrap(err, "delete_article_comments")
		}

		tag, err := tx.Exec(ctx, deleteArticle, id)
		if err != nil {
			return dberr.Wrap(err, "delete_article")
		}
		if tag.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}
		return nil
	})
}
