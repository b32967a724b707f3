// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/newsdesk/internal/core/article"
	"github.com/taibuivan/newsdesk/internal/core/comment"
	"github.com/taibuivan/newsdesk/internal/core/topic"
	"github.com/taibuivan/newsdesk/internal/core/user"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/seed"
	"github.com/taibuivan/newsdesk/pkg/pointer"
	"github.com/taibuivan/newsdesk/pkg/query"
	"github.com/taibuivan/newsdesk/pkg/timestamp"
)

// memStore is an in-memory stand-in for the PostgreSQL schema, loaded from
// the development fixtures.
type memStore struct {
	mu            sync.Mutex
	topics        []*topic.Topic
	users         []*user.User
	articles      []*article.Article
	comments      []*comment.Comment
	nextArticleID int64
	nextCommentID int64
	queries       int
}

func newMemStore(dataset *seed.Dataset) *memStore {
	store := &memStore{}
	for _, row := range dataset.Topics {
		store.topics = append(store.topics, &topic.Topic{Slug: row.Slug, Description: row.Description})
	}
	for _, row := range dataset.Users {
		store.users = append(store.users, &user.User{Username: row.Username, Name: row.Name, AvatarURL: row.AvatarURL})
	}
	for index, row := range dataset.Articles {
		store.articles = append(store.articles, &article.Article{
			ID: int64(index + 1), Title: row.Title, Topic: row.Topic, Author: row.Author,
			Body: row.Body, CreatedAt: timestamp.New(row.CreatedAt), Votes: row.Votes, ImageURL: row.ImageURL,
		})
	}
	for index, row := range dataset.Comments {
		store.comments = append(store.comments, &comment.Comment{
			ID: int64(index + 1), ArticleID: row.ArticleID, Author: row.Author,
			Body: row.Body, Votes: row.Votes, CreatedAt: timestamp.New(row.CreatedAt),
		})
	}
	store.nextArticleID = int64(len(store.articles) + 1)
	store.nextCommentID = int64(len(store.comments) + 1)
	return store
}

func (store *memStore) touch() {
	store.queries++
}

func (store *memStore) commentCount(articleID int64) int64 {
	var count int64
	for _, c := range store.comments {
		if c.ArticleID == articleID {
			count++
		}
	}
	return count
}

// # Topics

type memTopics struct{ *memStore }

func (m memTopics) List(context.Context) ([]*topic.Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	return slices.Clone(m.topics), nil
}

func (m memTopics) Exists(_ context.Context, slug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	return slices.ContainsFunc(m.topics, func(t *topic.Topic) bool { return t.Slug == slug }), nil
}

func (m memTopics) ExistsByDescription(_ context.Context, description string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	return slices.ContainsFunc(m.topics, func(t *topic.Topic) bool { return t.Description == description }), nil
}

func (m memTopics) Create(_ context.Context, t *topic.Topic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	m.topics = append(m.topics, t)
	return nil
}

// # Users

type memUsers struct{ *memStore }

func (m memUsers) List(context.Context) ([]*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	return slices.Clone(m.users), nil
}

func (m memUsers) FindByUsername(_ context.Context, username string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m memUsers) Exists(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	return slices.ContainsFunc(m.users, func(u *user.User) bool { return u.Username == username }), nil
}

// # Articles

type memArticles struct{ *memStore }

func (m memArticles) find(id int64) *article.Article {
	for _, a := range m.articles {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (m memArticles) FindByID(_ context.Context, id int64) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	found := m.find(id)
	if found == nil {
		return nil, dberr.ErrNotFound
	}
	copied := *found
	copied.CommentCount = pointer.To(m.commentCount(id))
	return &copied, nil
}

func (m memArticles) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	return m.find(id) != nil, nil
}

func (m memArticles) filtered(filter article.Filter) []*article.Summary {
	summaries := make([]*article.Summary, 0)
	for _, a := range m.articles {
		if filter.Topic != "" && a.Topic != filter.Topic {
			continue
		}
		summaries = append(summaries, &article.Summary{
			ID: a.ID, Title: a.Title, Topic: a.Topic, Author: a.Author,
			CreatedAt: a.CreatedAt, Votes: a.Votes, ImageURL: a.ImageURL,
			CommentCount: m.commentCount(a.ID),
		})
	}
	return summaries
}

func compareBy(field article.SortField, a, b *article.Summary) int {
	switch field {
	case article.SortArticleID:
		return cmp.Compare(a.ID, b.ID)
	case article.SortTitle:
		return cmp.Compare(a.Title, b.Title)
	case article.SortTopic:
		return cmp.Compare(a.Topic, b.Topic)
	case article.SortAuthor:
		return cmp.Compare(a.Author, b.Author)
	case article.SortVotes:
		return cmp.Compare(a.Votes, b.Votes)
	case article.SortCommentCount:
		return cmp.Compare(a.CommentCount, b.CommentCount)
	default:
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	}
}

func (m memArticles) List(_ context.Context, q article.Query) ([]*article.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	summaries := m.filtered(q.Filter)
	slices.SortFunc(summaries, func(a, b *article.Summary) int {
		order := compareBy(q.Sort, a, b)
		if q.Order == query.Desc {
			order = -order
		}
		if order != 0 {
			return order
		}
		return cmp.Compare(a.ID, b.ID)
	})

	start := min(q.Page.Offset(), len(summaries))
	end := min(start+q.Page.Limit, len(summaries))
	return summaries[start:end], nil
}

func (m memArticles) Count(_ context.Context, filter article.Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	return int64(len(m.filtered(filter))), nil
}

func (m memArticles) Create(_ context.Context, a *article.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	a.ID = m.nextArticleID
	a.CreatedAt = timestamp.New(time.Now().UTC())
	m.nextArticleID++
	stored := *a
	m.articles = append(m.articles, &stored)
	return nil
}

func (m memArticles) IncrementVotes(_ context.Context, id int64, delta int64) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	found := m.find(id)
	if found == nil {
		return nil, dberr.ErrNotFound
	}
	found.Votes += delta
	copied := *found
	return &copied, nil
}

func (m memArticles) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	if m.find(id) == nil {
		return dberr.ErrNotFound
	}
	m.comments = slices.DeleteFunc(m.comments, func(c *comment.Comment) bool { return c.ArticleID == id })
	m.articles = slices.DeleteFunc(m.articles, func(a *article.Article) bool { return a.ID == id })
	return nil
}

// # Comments

type memComments struct{ *memStore }

func (m memComments) ListByArticle(_ context.Context, articleID int64) ([]*comment.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	found := make([]*comment.Comment, 0)
	for _, c := range m.comments {
		if c.ArticleID == articleID {
			found = append(found, c)
		}
	}
	slices.SortFunc(found, func(a, b *comment.Comment) int {
		if order := b.CreatedAt.Compare(a.CreatedAt.Time); order != 0 {
			return order
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return found, nil
}

func (m memComments) Create(_ context.Context, c *comment.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	c.ID = m.nextCommentID
	c.CreatedAt = timestamp.New(time.Now().UTC())
	m.nextCommentID++
	stored := *c
	m.comments = append(m.comments, &stored)
	return nil
}

func (m memComments) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()
	before := len(m.comments)
	m.comments = slices.DeleteFunc(m.comments, func(c *comment.Comment) bool { return c.ID == id })
	if len(m.comments) == before {
		return dberr.ErrNotFound
	}
	return nil
}
