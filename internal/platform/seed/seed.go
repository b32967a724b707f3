// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads the development dataset into an empty Newsdesk schema.

The dataset lives in four JSON files (topics, users, articles, comments).
Articles are numbered by their position in articles.json starting at 1, and
comments refer to articles by that number.

Loading is split in two stages:

  - [Load]: Reads and cross-checks the files without touching the database.
  - [Apply]: Bulk-copies the rows in one transaction and resets the id sequences.
*/
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/postgres"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
)

// Fixture file names inside the seed directory.
const (
	TopicsFile   = "topics.json"
	UsersFile    = "users.json"
	ArticlesFile = "articles.json"
	CommentsFile = "comments.json"
)

// ErrInvalidDataset is wrapped by every cross-check failure in [Load].
var ErrInvalidDataset = errors.New("seed: invalid dataset")

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type Article struct {
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int64     `json:"votes"`
	ImageURL  string    `json:"article_img_url"`
}

type Comment struct {
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int64     `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Dataset is the full fixture set.
type Dataset struct {
	Topics   []Topic
	Users    []User
	Articles []Article
	Comments []Comment
}

// Load reads the fixtures in dir and verifies that every reference resolves.
func Load(dir string) (*Dataset, error) {
	dataset := &Dataset{}

	files := []struct {
		name   string
		target any
	}{
		{TopicsFile, &dataset.Topics},
		{UsersFile, &dataset.Users},
		{ArticlesFile, &dataset.Articles},
		{CommentsFile, &dataset.Comments},
	}

	for _, file := range files {
		if err := readJSON(filepath.Join(dir, file.name), file.target); err != nil {
			return nil, err
		}
	}

	if err := dataset.check(); err != nil {
		return nil, err
	}
	return dataset, nil
}

func readJSON(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("seed: decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// check enforces the same invariants the schema would, so a bad fixture fails
// before any row is written.
func (dataset *Dataset) check() error {
	topics := make(map[string]bool, len(dataset.Topics))
	descriptions := make(map[string]bool, len(dataset.Topics))
	for _, topic := range dataset.Topics {
		switch {
		case validate.IsBlank(topic.Slug) || validate.IsBlank(topic.Description):
			return fmt.Errorf("%w: topic %q has a blank field", ErrInvalidDataset, topic.Slug)
		case topics[topic.Slug]:
			return fmt.Errorf("%w: duplicate topic %q", ErrInvalidDataset, topic.Slug)
		case descriptions[topic.Description]:
			return fmt.Errorf("%w: duplicate topic description %q", ErrInvalidDataset, topic.Description)
		}
		topics[topic.Slug] = true
		descriptions[topic.Description] = true
	}

	users := make(map[string]bool, len(dataset.Users))
	for _, user := range dataset.Users {
		if users[user.Username] {
			return fmt.Errorf("%w: duplicate user %q", ErrInvalidDataset, user.Username)
		}
		users[user.Username] = true
	}

	for index, article := range dataset.Articles {
		if !topics[article.Topic] {
			return fmt.Errorf("%w: article %d references unknown topic %q", ErrInvalidDataset, index+1, article.Topic)
		}
		if !users[article.Author] {
			return fmt.Errorf("%w: article %d references unknown user %q", ErrInvalidDataset, index+1, article.Author)
		}
	}

	for index, comment := range dataset.Comments {
		if comment.ArticleID < 1 || comment.ArticleID > int64(len(dataset.Articles)) {
			return fmt.Errorf("%w: comment %d references unknown article %d", ErrInvalidDataset, index+1, comment.ArticleID)
		}
		if !users[comment.Author] {
			return fmt.Errorf("%w: comment %d references unknown user %q", ErrInvalidDataset, index+1, comment.Author)
		}
	}

	return nil
}

/*
Apply writes the dataset into db inside a single transaction.

The tables must be empty. Articles and comments are inserted with explicit ids
(their 1-based position), after which the serial sequences are moved past the
highest id so that API inserts continue from there.
*/
func Apply(ctx context.Context, db postgres.DB, dataset *Dataset, logger *slog.Logger) error {
	return postgres.InTx(ctx, db, func(tx pgx.Tx) error {
		steps := []struct {
			table   string
			columns []string
			rows    [][]any
		}{
			{schema.NewsTopic.Table, schema.NewsTopic.Columns(), dataset.topicRows()},
			{schema.NewsUser.Table, schema.NewsUser.Columns(), dataset.userRows()},
			{schema.NewsArticle.Table, schema.NewsArticle.Columns(), dataset.articleRows()},
			{schema.NewsComment.Table, schema.NewsComment.Columns(), dataset.commentRows()},
		}

		for _, step := range steps {
			copied, err := tx.CopyFrom(ctx, pgx.Identifier{step.table}, step.columns, pgx.CopyFromRows(step.rows))
			if err != nil {
				return fmt.Errorf("seed: copy %s: %w", step.table, err)
			}
			logger.InfoContext(ctx, "seed_table_loaded", slog.String("table", step.table), slog.Int64("rows", copied))
		}

		for _, sequence := range [][2]string{
			{schema.NewsArticle.Table, schema.NewsArticle.ID},
			{schema.NewsComment.Table, schema.NewsComment.ID},
		} {
			if err := resetSequence(ctx, tx, sequence[0], sequence[1]); err != nil {
				return err
			}
		}
		return nil
	})
}

func resetSequence(ctx context.Context, tx pgx.Tx, table, column string) error {
	query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 0) + 1, false)`,
		table, column, column, table)

	if _, err := tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("seed: reset sequence %s.%s: %w", table, column, err)
	}
	return nil
}

func (dataset *Dataset) topicRows() [][]any {
	rows := make([][]any, 0, len(dataset.Topics))
	for _, topic := range dataset.Topics {
		rows = append(rows, []any{topic.Slug, topic.Description})
	}
	return rows
}

func (dataset *Dataset) userRows() [][]any {
	rows := make([][]any, 0, len(dataset.Users))
	for _, user := range dataset.Users {
		rows = append(rows, []any{user.Username, user.Name, user.AvatarURL})
	}
	return rows
}

// articleRows follows the column order of schema.NewsArticle.Columns.
func (dataset *Dataset) articleRows() [][]any {
	rows := make([][]any, 0, len(dataset.Articles))
	for index, article := range dataset.Articles {
		rows = append(rows, []any{
			int64(index + 1), article.Title, article.Topic, article.Author,
			article.Body, article.CreatedAt, int32(article.Votes), article.ImageURL,
		})
	}
	return rows
}

// commentRows follows the column order of schema.NewsComment.Columns.
func (dataset *Dataset) commentRows() [][]any {
	rows := make([][]any, 0, len(dataset.Comments))
	for index, comment := range dataset.Comments {
		rows = append(rows, []any{
			int64(index + 1), comment.ArticleID, comment.Author,
			comment.Body, int32(comment.Votes), comment.CreatedAt,
		})
	}
	return rows
}
