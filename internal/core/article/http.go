// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/newsdesk/internal/platform/request"
	"github.com/taibuivan/newsdesk/internal/platform/respond"
)

// PathParam is the URL parameter holding the article identifier.
const PathParam = "article_id"

// Handler exposes articles over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates an article handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the article endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Post("/", handler.createArticle)
	router.Get("/{article_id}", handler.getArticle)
	router.Patch("/{article_id}", handler.voteArticle)
	router.Delete("/{article_id}", handler.deleteArticle)
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.List(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.Get(request.Context(), requestutil.Param(request, PathParam))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"article": article})
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]any{"article": article})
}

func (handler *Handler) voteArticle(writer http.ResponseWriter, request *http.Request) {
	var input VoteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Vote(request.Context(), requestutil.Param(request, PathParam), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"article": article})
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, PathParam)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
