package http

import (
	"log/slog"
	"net/http"

	v1 "marketplace/internal/api/v1"
	"marketplace/internal/service"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	service *service.Service
	logger  *slog.Logger
}

func NewServer(service *service.Service, logger *slog.Logger) *Server {
	return &Server{service: service, logger: logger}
}

func (s *Server) Routes() http.Handler {
	handler := v1.NewHandler(s.service)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/api/v1", handler.Routes())
	return r
}
