// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/metrics"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
	"github.com/taibuivan/newsdesk/pkg/pointer"
)

// TopicLookup reports whether a topic slug exists.
type TopicLookup interface {
	Exists(ctx context.Context, slug string) (bool, error)
}

// UserLookup reports whether a username exists.
type UserLookup interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Service implements the article use cases.
//
// Every method runs its checks in a fixed order and returns the first failure
// as an [apperr.AppError]; nothing is written until all checks pass.
type Service struct {
	repo     Repository
	topics   TopicLookup
	users    UserLookup
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewService wires an article service.
func NewService(repo Repository, topics TopicLookup, users UserLookup, recorder metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		topics:   topics,
		users:    users,
		recorder: recorder,
		logger:   logger,
	}
}

/*
List resolves the query string and returns one page of articles.

Order of checks:
 1. sortby whitelist (400)
 2. order whitelist (400)
 3. topic exists, when filtered (404)

TotalCount covers the whole filtered set, not just the returned page.
*/
func (service *Service) List(ctx context.Context, values url.Values) (*Page, error) {
	query, err := ResolveQuery(values)
	if err != nil {
		return nil, err
	}

	if query.Topic != "" {
		found, err := service.topics.Exists(ctx, query.Topic)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, apperr.ErrTopicNotFound
		}
	}

	articles, err := service.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	total, err := service.repo.Count(ctx, query.Filter)
	if err != nil {
		return nil, err
	}

	return &Page{Articles: articles, TotalCount: total}, nil
}

// Get returns a single article with its comment count.
func (service *Service) Get(ctx context.Context, rawID string) (*Article, error) {
	id, err := validate.ParseID(rawID)
	if err != nil {
		return nil, apperr.ErrInvalidSyntax
	}

	article, err := service.repo.FindByID(ctx, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.ErrItemNotFound
	}
	return article, err
}

// Exists reports whether an article with the given id is stored.
func (service *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return service.repo.Exists(ctx, id)
}

/*
Create validates and stores a new article with zero votes.

Order of checks: required fields (422), topic exists (404), user exists (404).
A missing article_img_url is replaced by [DefaultImageURL].
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Article, error) {

	// 1. Required fields
	validator := &validate.Validator{}
	validator.
		Required("title", input.Title).
		Required("body", input.Body).
		Required("topic", input.Topic).
		Required("username", input.Username)
	if validator.HasErrors() {
		service.logger.DebugContext(ctx, "article_rejected", slog.Any("fields", validator.Fields()))
		return nil, apperr.ErrEmptyArticle
	}

	// 2. Referenced entities
	found, err := service.topics.Exists(ctx, input.Topic)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.ErrTopicNotFound
	}

	found, err = service.users.Exists(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.ErrUserNotFound
	}

	// 3. Persist
	article := &Article{
		Title:    input.Title,
		Topic:    input.Topic,
		Author:   input.Username,
		Body:     input.Body,
		ImageURL: input.ImageURL,
	}
	if validate.IsBlank(article.ImageURL) {
		article.ImageURL = DefaultImageURL
	}

	if err := service.repo.Create(ctx, article); err != nil {
		return nil, classifyReferenceError(err)
	}

	article.CommentCount = pointer.To(int64(0))

	service.recorder.RecordWrite(metrics.EntityArticle, metrics.ActionCreated)
	service.logger.InfoContext(ctx, "article_created",
		slog.Int64("article_id", article.ID),
		slog.String("topic", article.Topic),
	)
	return article, nil
}

/*
Vote adds inc_votes to the article's vote count and returns the updated article.

Order of checks: article id syntax (400 Invalid article_id), inc_votes is a
JSON integer (400), article exists (404). The increment is a single atomic
UPDATE, so repeated calls accumulate.
*/
func (service *Service) Vote(ctx context.Context, rawID string, input VoteInput) (*Article, error) {
	id, err := validate.ParseID(rawID)
	if err != nil {
		return nil, apperr.ErrInvalidArticleID
	}

	delta, err := parseIncrement(input.IncVotes)
	if err != nil {
		return nil, err
	}

	article, err := service.repo.IncrementVotes(ctx, id, delta)
	switch {
	case errors.Is(err, dberr.ErrNotFound):
		return nil, apperr.ErrArticleNotFound
	case errors.Is(err, dberr.ErrOutOfRange):
		return nil, apperr.ErrInvalidVotes
	case err != nil:
		return nil, err
	}

	service.recorder.RecordVotes(metrics.EntityArticle, delta)
	return article, nil
}

// Delete removes an article together with all of its comments.
func (service *Service) Delete(ctx context.Context, rawID string) error {
	id, err := validate.ParseID(rawID)
	if err != nil {
		return apperr.ErrInvalidSyntax
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.ArticleIDNotFound(rawID)
		}
		return err
	}

	service.recorder.RecordWrite(metrics.EntityArticle, metrics.ActionDeleted)
	service.logger.InfoContext(ctx, "article_deleted", slog.Int64("article_id", id))
	return nil
}

// parseIncrement accepts only a bare JSON integer literal within the range of
// the INT votes column.
func parseIncrement(raw []byte) (int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, apperr.ErrInvalidVotes
	}

	delta, err := strconv.ParseInt(string(trimmed), 10, 32)
	if err != nil {
		return 0, apperr.ErrInvalidVotes
	}
	return delta, nil
}

// classifyReferenceError maps a foreign key race on insert to the 404 of the
// entity that disappeared between the check and the write.
func classifyReferenceError(err error) error {
	if !errors.Is(err, dberr.ErrForeignKeyViolation) {
		return err
	}
	if dberr.Constraint(err) == schema.NewsArticle.TopicFK {
		return apperr.ErrTopicNotFound
	}
	return apperr.ErrUserNotFound
}
