// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/metrics"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
)

// ArticleLookup reports whether an article exists.
type ArticleLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// UserLookup reports whether a username exists.
type UserLookup interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Service implements the comment use cases. Article and user existence are
// checked through the lookups so that misses map to the right 404.
type Service struct {
	repo     Repository
	articles ArticleLookup
	users    UserLookup
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewService wires a comment service.
func NewService(repo Repository, articles ArticleLookup, users UserLookup, recorder metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		articles: articles,
		users:    users,
		recorder: recorder,
		logger:   logger,
	}
}

// ListForArticle returns the article's comments. An article without comments
// yields an empty thread; a missing article is a 404.
func (service *Service) ListForArticle(ctx context.Context, rawArticleID string) (*Thread, error) {
	articleID, err := validate.ParseID(rawArticleID)
	if err != nil {
		return nil, apperr.ErrInvalidSyntax
	}

	found, err := service.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.ErrItemNotFound
	}

	comments, err := service.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	return &Thread{Comments: comments, CommentCount: int64(len(comments))}, nil
}

/*
Create posts a comment under an article.

Order of checks:
 1. article id syntax (400 Invalid article_id)
 2. body and username present (400)
 3. article exists (404)
 4. user exists (404)
*/
func (service *Service) Create(ctx context.Context, rawArticleID string, input CreateInput) (*Comment, error) {
	articleID, err := validate.ParseID(rawArticleID)
	if err != nil {
		return nil, apperr.ErrInvalidArticleID
	}

	if validate.IsBlank(input.Body) || validate.IsBlank(input.Username) {
		return nil, apperr.ErrEmptyComment
	}

	found, err := service.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.ErrArticleNotFound
	}

	found, err = service.users.Exists(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.ErrUserNotFound
	}

	comment := &Comment{ArticleID: articleID, Author: input.Username, Body: input.Body}
	if err := service.repo.Create(ctx, comment); err != nil {
		return nil, classifyReferenceError(err)
	}

	service.recorder.RecordWrite(metrics.EntityComment, metrics.ActionCreated)
	service.logger.InfoContext(ctx, "comment_created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("article_id", articleID),
	)
	return comment, nil
}

// Delete removes a single comment.
func (service *Service) Delete(ctx context.Context, rawID string) error {
	id, err := validate.ParseID(rawID)
	if err != nil {
		return apperr.ErrInvalidSyntax
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.ErrCommentNotFound
		}
		return err
	}

	service.recorder.RecordWrite(metrics.EntityComment, metrics.ActionDeleted)
	service.logger.InfoContext(ctx, "comment_deleted", slog.Int64("comment_id", id))
	return nil
}

func classifyReferenceError(err error) error {
	if !errors.Is(err, dberr.ErrForeignKeyViolation) {
		return err
	}
	if dberr.Constraint(err) == schema.NewsComment.ArticleFK {
		return apperr.ErrArticleNotFound
	}
	return apperr.ErrUserNotFound
}
