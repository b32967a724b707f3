// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/url"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/pkg/pagination"
	"github.com/taibuivan/newsdesk/pkg/query"
)

// SortField names a column the article list can be ordered by.
type SortField string

const (
	SortArticleID    SortField = "article_id"
	SortTitle        SortField = "title"
	SortTopic        SortField = "topic"
	SortAuthor       SortField = "author"
	SortCreatedAt    SortField = "created_at"
	SortVotes        SortField = "votes"
	SortCommentCount SortField = "comment_count"

	// DefaultSort applies when the caller omits sortby.
	DefaultSort = SortCreatedAt
)

// sortExpressions is the sort whitelist. Each key maps to the only SQL
// expression that may appear in ORDER BY for it.
var sortExpressions = map[SortField]string{
	SortArticleID:    "a." + schema.NewsArticle.ID,
	SortTitle:        "a." + schema.NewsArticle.Title,
	SortTopic:        "a." + schema.NewsArticle.Topic,
	SortAuthor:       "a." + schema.NewsArticle.Author,
	SortCreatedAt:    "a." + schema.NewsArticle.CreatedAt,
	SortVotes:        "a." + schema.NewsArticle.Votes,
	SortCommentCount: "comment_count",
}

// IsValid reports whether f is on the sort whitelist.
func (f SortField) IsValid() bool {
	_, ok := sortExpressions[f]
	return ok
}

// ParseSortField resolves the sortby parameter, defaulting to [DefaultSort].
func ParseSortField(raw string) (SortField, bool) {
	if raw == "" {
		return DefaultSort, true
	}
	field := SortField(raw)
	return field, field.IsValid()
}

// Filter narrows the article set before pagination.
type Filter struct {
	Topic string
}

// Query is a fully validated article list request.
type Query struct {
	Filter
	Sort  SortField
	Order query.Direction
	Page  pagination.Params
}

/*
ResolveQuery turns raw query-string values into a [Query].

sortby is validated before order. page and limit never fail; out-of-range
values fall back to their defaults. The topic filter is returned as given;
checking that it exists needs the store and is left to the caller.
*/
func ResolveQuery(values url.Values) (Query, error) {
	sort, ok := ParseSortField(values.Get("sortby"))
	if !ok {
		return Query{}, apperr.ErrUnknownSort
	}

	order, ok := query.ParseDirection(values.Get("order"))
	if !ok {
		return Query{}, apperr.ErrUnknownOrder
	}

	return Query{
		Filter: Filter{Topic: values.Get("topic")},
		Sort:   sort,
		Order:  order,
		Page:   pagination.FromValues(values),
	}, nil
}
