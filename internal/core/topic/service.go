// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package topic

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/metrics"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
)

// Service implements the topic use cases.
type Service struct {
	repo     Repository
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewService wires a topic service.
func NewService(repo Repository, recorder metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

// List returns every topic ordered by slug.
func (service *Service) List(ctx context.Context) ([]*Topic, error) {
	return service.repo.List(ctx)
}

/*
Create validates and persists a new topic.

The slug is stored as given apart from surrounding whitespace; "Cats" and
"cats" are distinct topics. Checks run in a fixed order: blank fields, slug
taken, description taken.

Returns:
  - *Topic: The stored topic
  - error: A 422 catalogue error, or a wrapped store failure
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Topic, error) {

	// 1. Blank fields
	validator := &validate.Validator{}
	validator.
		Required("slug", input.Slug).
		Required("description", input.Description)
	if validator.HasErrors() {
		service.logger.DebugContext(ctx, "topic_rejected", slog.Any("fields", validator.Fields()))
		return nil, apperr.ErrEmptyTopic
	}
	topicSlug := strings.TrimSpace(input.Slug)

	// 2. Uniqueness, slug first
	taken, err := service.repo.Exists(ctx, topicSlug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.ErrDuplicateSlug
	}

	taken, err = service.repo.ExistsByDescription(ctx, input.Description)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.ErrDuplicateDescription
	}

	// 3. Persist; a concurrent insert still surfaces as a constraint violation
	topic := &Topic{Slug: topicSlug, Description: input.Description}
	if err := service.repo.Create(ctx, topic); err != nil {
		return nil, classifyCreateError(err)
	}

	service.recorder.RecordWrite(metrics.EntityTopic, metrics.ActionCreated)
	service.logger.InfoContext(ctx, "topic_created", slog.String("slug", topic.Slug))
	return topic, nil
}

func classifyCreateError(err error) error {
	if !errors.Is(err, dberr.ErrUniqueViolation) {
		return err
	}
	switch dberr.Constraint(err) {
	case schema.NewsTopic.DescriptionKey:
		return apperr.ErrDuplicateDescription
	default:
		return apperr.ErrDuplicateSlug
	}
}
