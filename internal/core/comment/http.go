// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/newsdesk/internal/platform/request"
	"github.com/taibuivan/newsdesk/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the endpoints addressed by comment id.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Delete("/{comment_id}", handler.deleteComment)
}

// RegisterArticleRoutes mounts the thread endpoints on the article router.
func (handler *Handler) RegisterArticleRoutes(router chi.Router) {
	router.Get("/{article_id}/comments", handler.listComments)
	router.Post("/{article_id}/comments", handler.createComment)
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	thread, err := handler.service.ListForArticle(request.Context(), requestutil.Param(request, "article_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, thread)
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Create(request.Context(), requestutil.Param(request, "article_id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]any{"comment": comment})
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "comment_id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
