// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/newsdesk/internal/platform/respond"
)

// endpoint documents one route for GET /api.
type endpoint struct {
	Description     string   `json:"description"`
	Queries         []string `json:"queries,omitempty"`
	ExampleBody     any      `json:"exampleBody,omitempty"`
	ExampleResponse any      `json:"exampleResponse,omitempty"`
}

// endpoints is keyed by "METHOD /path".
var endpoints = map[string]endpoint{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
		ExampleResponse: map[string]any{
			"topics": []map[string]string{{"slug": "football", "description": "Footie!"}},
		},
	},
	"POST /api/topics": {
		Description: "adds a topic; slug and description must be non-empty and unique",
		ExampleBody: map[string]string{"slug": "basketball", "description": "Amazing game for all people"},
	},
	"GET /api/articles": {
		Description: "serves a page of articles with a string comment_count and the string total_count of the filtered set",
		Queries:     []string{"topic", "sortby", "order", "page", "limit"},
		ExampleResponse: map[string]any{
			"articles": []map[string]any{{
				"article_id":      1,
				"title":           "Seafood substitutions are increasing",
				"topic":           "cooking",
				"author":          "weegembump",
				"created_at":      "2018-05-30T15:59:13.341Z",
				"votes":           0,
				"article_img_url": "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
				"comment_count":   "6",
			}},
			"total_count": "1",
		},
	},
	"POST /api/articles": {
		Description: "adds an article with zero votes; article_img_url is optional",
		ExampleBody: map[string]string{"title": "Living in the shadow of a great man", "body": "I find this existence challenging", "topic": "mitch", "username": "butter_bridge"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article with a numeric comment_count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adds inc_votes (a signed integer) to the article's votes and serves the updated article",
		ExampleBody: map[string]int{"inc_votes": 1},
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes an article together with its comments",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves the comments of an article, newest first, with their count",
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to an article",
		ExampleBody: map[string]string{"username": "butter_bridge", "body": "This morning, I showered for nine minutes."},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user",
	},
}

func describeEndpoints(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, endpoints)
}
