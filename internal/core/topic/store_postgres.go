// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package topic

import (
	"context"
	"fmt"

	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository creates a topic repository backed by db.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.NewsTopic.Slug, schema.NewsTopic.Description,
		schema.NewsTopic.Table, schema.NewsTopic.Slug)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	topics := make([]*Topic, 0)
	for rows.Next() {
		topic := &Topic{}
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_topics")
	}
	return topics, nil
}

func (repository *PostgresRepository) Exists(ctx context.Context, slug string) (bool, error) {
	return repository.exists(ctx, schema.NewsTopic.Slug, slug, "topic_exists")
}

func (repository *PostgresRepository) ExistsByDescription(ctx context.Context, description string) (bool, error) {
	return repository.exists(ctx, schema.NewsTopic.Description, description, "topic_description_exists")
}

func (repository *PostgresRepository) exists(ctx context.Context, column, value, action string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.NewsTopic.Table, column)

	var found bool
	if err := repository.db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, dberr.Wrap(err, action)
	}
	return found, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, topic *Topic) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s, %s`,
		schema.NewsTopic.Table, schema.NewsTopic.Slug, schema.NewsTopic.Description,
		schema.NewsTopic.Slug, schema.NewsTopic.Description)

	err := repository.db.QueryRow(ctx, query, topic.Slug, topic.Description).Scan(&topic.Slug, &topic.Description)
	if err != nil {
		return dberr.Wrap(err, "create_topic")
	}
	return nil
}
