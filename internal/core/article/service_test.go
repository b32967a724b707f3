// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/metrics"
	"github.com/taibuivan/newsdesk/pkg/timestamp"
)

// fakeRepository keeps articles in a map and counts store calls.
type fakeRepository struct {
	articles  map[int64]*Article
	comments  map[int64]int64
	nextID    int64
	createErr error
	calls     int
	lastQuery Query
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		articles: map[int64]*Article{
			1: {ID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", Votes: 100},
			2: {ID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell.", Votes: 0},
		},
		comments: map[int64]int64{1: 11},
		nextID:   3,
	}
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*Article, error) {
	f.calls++
	article, ok := f.articles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *article
	count := f.comments[id]
	copied.CommentCount = &count
	return &copied, nil
}

func (f *fakeRepository) Exists(_ context.Context, id int64) (bool, error) {
	f.calls++
	_, ok := f.articles[id]
	return ok, nil
}

func (f *fakeRepository) List(_ context.Context, query Query) ([]*Summary, error) {
	f.calls++
	f.lastQuery = query
	summaries := make([]*Summary, 0)
	for _, article := range f.articles {
		if query.Topic == "" || article.Topic == query.Topic {
			summaries = append(summaries, &Summary{ID: article.ID, Topic: article.Topic, CommentCount: f.comments[article.ID]})
		}
	}
	return summaries, nil
}

func (f *fakeRepository) Count(_ context.Context, filter Filter) (int64, error) {
	f.calls++
	var total int64
	for _, article := range f.articles {
		if filter.Topic == "" || article.Topic == filter.Topic {
			total++
		}
	}
	return total, nil
}

func (f *fakeRepository) Create(_ context.Context, article *Article) error {
	f.calls++
	if f.createErr != nil {
		return f.createErr
	}
	article.ID = f.nextID
	article.CreatedAt = timestamp.New(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	f.nextID++
	stored := *article
	f.articles[article.ID] = &stored
	return nil
}

func (f *fakeRepository) IncrementVotes(_ context.Context, id int64, delta int64) (*Article, error) {
	f.calls++
	article, ok := f.articles[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	article.Votes += delta
	copied := *article
	return &copied, nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) error {
	f.calls++
	if _, ok := f.articles[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.articles, id)
	delete(f.comments, id)
	return nil
}

type fakeLookup map[string]bool

func (f fakeLookup) Exists(_ context.Context, key string) (bool, error) {
	return f[key], nil
}

func newTestService(repo *fakeRepository) *Service {
	return NewService(
		repo,
		fakeLookup{"mitch": true, "cats": true, "paper": true},
		fakeLookup{"butter_bridge": true, "icellusedkars": true},
		metrics.Nop{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestService_List(t *testing.T) {
	t.Run("returns_page_and_total", func(t *testing.T) {
		repo := newFakeRepository()
		page, err := newTestService(repo).List(context.Background(), url.Values{"topic": {"mitch"}})

		require.NoError(t, err)
		assert.Len(t, page.Articles, 2)
		assert.EqualValues(t, 2, page.TotalCount)
		assert.Equal(t, SortCreatedAt, repo.lastQuery.Sort)
	})

	t.Run("existing_topic_without_articles_is_empty", func(t *testing.T) {
		page, err := newTestService(newFakeRepository()).List(context.Background(), url.Values{"topic": {"paper"}})

		require.NoError(t, err)
		assert.Empty(t, page.Articles)
		assert.Zero(t, page.TotalCount)
	})

	t.Run("unknown_topic", func(t *testing.T) {
		_, err := newTestService(newFakeRepository()).List(context.Background(), url.Values{"topic": {"dogs"}})
		assert.ErrorIs(t, err, apperr.ErrTopicNotFound)
	})

	t.Run("invalid_sort_never_reaches_store", func(t *testing.T) {
		repo := newFakeRepository()
		_, err := newTestService(repo).List(context.Background(), url.Values{"sortby": {"notvalidparam"}})

		assert.ErrorIs(t, err, apperr.ErrUnknownSort)
		assert.Zero(t, repo.calls)
	})
}

func TestService_Get(t *testing.T) {
	service := newTestService(newFakeRepository())

	article, err := service.Get(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, article.CommentCount)
	assert.EqualValues(t, 11, *article.CommentCount)

	_, err = service.Get(context.Background(), "9999")
	assert.ErrorIs(t, err, apperr.ErrItemNotFound)

	_, err = service.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, apperr.ErrInvalidSyntax)
}

func TestService_Create(t *testing.T) {
	valid := CreateInput{Title: "New", Body: "Text", Topic: "cats", Username: "butter_bridge"}

	t.Run("stores_with_defaults", func(t *testing.T) {
		repo := newFakeRepository()
		article, err := newTestService(repo).Create(context.Background(), valid)

		require.NoError(t, err)
		assert.EqualValues(t, 3, article.ID)
		assert.Equal(t, "butter_bridge", article.Author)
		assert.Zero(t, article.Votes)
		assert.Equal(t, DefaultImageURL, article.ImageURL)
		require.NotNil(t, article.CommentCount)
		assert.Zero(t, *article.CommentCount)
	})

	t.Run("keeps_supplied_image", func(t *testing.T) {
		input := valid
		input.ImageURL = "https://example.com/cat.png"

		article, err := newTestService(newFakeRepository()).Create(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/cat.png", article.ImageURL)
	})

	tests := []struct {
		name   string
		mutate func(*CreateInput)
		want   *apperr.AppError
	}{
		{"missing_body", func(in *CreateInput) { in.Body = "" }, apperr.ErrEmptyArticle},
		{"missing_username", func(in *CreateInput) { in.Username = "" }, apperr.ErrEmptyArticle},
		{"blank_title", func(in *CreateInput) { in.Title = "  " }, apperr.ErrEmptyArticle},
		{"unknown_topic", func(in *CreateInput) { in.Topic = "non-existing" }, apperr.ErrTopicNotFound},
		{"unknown_user", func(in *CreateInput) { in.Username = "xxx" }, apperr.ErrUserNotFound},
		{"topic_checked_before_user", func(in *CreateInput) {
			in.Topic = "nope"
			in.Username = "xxx"
		}, apperr.ErrTopicNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			repo := newFakeRepository()

			_, err := newTestService(repo).Create(context.Background(), input)

			assert.ErrorIs(t, err, tt.want)
			assert.Len(t, repo.articles, 2)
		})
	}

	t.Run("foreign_key_race", func(t *testing.T) {
		repo := newFakeRepository()
		repo.createErr = &dberr.ConstraintError{
			Kind:       dberr.ErrForeignKeyViolation,
			Constraint: schema.NewsArticle.AuthorFK,
			Cause:      errors.New("fk"),
		}

		_, err := newTestService(repo).Create(context.Background(), valid)
		assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	})
}

func vote(raw string) VoteInput {
	return VoteInput{IncVotes: json.RawMessage(raw)}
}

func TestService_Vote(t *testing.T) {
	t.Run("decrement", func(t *testing.T) {
		repo := newFakeRepository()
		article, err := newTestService(repo).Vote(context.Background(), "1", vote("-1"))

		require.NoError(t, err)
		assert.EqualValues(t, 99, article.Votes)
		assert.Equal(t, "Living in the shadow of a great man", article.Title)
		assert.Nil(t, article.CommentCount)
	})

	t.Run("accumulates", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo)

		_, err := service.Vote(context.Background(), "2", vote("1"))
		require.NoError(t, err)
		article, err := service.Vote(context.Background(), "2", vote("1"))
		require.NoError(t, err)

		assert.EqualValues(t, 2, article.Votes)
	})

	tests := []struct {
		name  string
		id    string
		input VoteInput
		want  *apperr.AppError
	}{
		{"bad_id", "abc", vote("1"), apperr.ErrInvalidArticleID},
		{"bad_id_checked_first", "abc", vote(`"x"`), apperr.ErrInvalidArticleID},
		{"missing_increment", "1", VoteInput{}, apperr.ErrInvalidVotes},
		{"null_increment", "1", vote("null"), apperr.ErrInvalidVotes},
		{"string_increment", "1", vote(`"1"`), apperr.ErrInvalidVotes},
		{"float_increment", "1", vote("1.5"), apperr.ErrInvalidVotes},
		{"exponent_increment", "1", vote("1e2"), apperr.ErrInvalidVotes},
		{"increment_above_int32", "1", vote("3000000000"), apperr.ErrInvalidVotes},
		{"increment_below_int32", "1", vote("-2147483649"), apperr.ErrInvalidVotes},
		{"missing_article", "9999", vote("1"), apperr.ErrArticleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			_, err := newTestService(repo).Vote(context.Background(), tt.id, tt.input)

			assert.ErrorIs(t, err, tt.want)
			assert.EqualValues(t, 100, repo.articles[1].Votes)
		})
	}
}

func TestService_Vote_OutOfRangeSkipsStore(t *testing.T) {
	repo := newFakeRepository()
	_, err := newTestService(repo).Vote(context.Background(), "1", vote("3000000000"))

	assert.ErrorIs(t, err, apperr.ErrInvalidVotes)
	assert.Zero(t, repo.calls)
}

func TestService_Vote_Int32Bounds(t *testing.T) {
	repo := newFakeRepository()
	article, err := newTestService(repo).Vote(context.Background(), "2", vote("2147483647"))

	require.NoError(t, err)
	assert.EqualValues(t, 2147483647, article.Votes)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	require.NoError(t, service.Delete(context.Background(), "1"))
	assert.NotContains(t, repo.articles, int64(1))
	assert.NotContains(t, repo.comments, int64(1))

	err := service.Delete(context.Background(), "46544")
	assert.ErrorIs(t, err, apperr.ArticleIDNotFound("46544"))
	assert.Equal(t, "Article 46544 does not exist", err.Error())

	err = service.Delete(context.Background(), "one")
	assert.ErrorIs(t, err, apperr.ErrInvalidSyntax)
}
