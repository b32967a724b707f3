// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/newsdesk/internal/platform/request"
	"github.com/taibuivan/newsdesk/internal/platform/respond"
)

// Handler exposes topics over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a topic handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the topic endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTopics)
	router.Post("/", handler.createTopic)
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"topics": topics})
}

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]any{"topic": topic})
}
