package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ahmadziyad0807/portfolio-sub002/internal/config"
	chathandler "github.com/ahmadziyad0807/portfolio-sub002/internal/handler/chat"
	"github.com/ahmadziyad0807/portfolio-sub002/internal/handler/health"
	"github.com/ahmadziyad0807/portfolio-sub002/internal/handler/stream"
	"github.com/ahmadziyad0807/portfolio-sub002/internal/middleware"
	chatservice "github.com/ahmadziyad0807/portfolio-sub002/internal/service/chat"
	"github.com/ahmadziyad0807/portfolio-sub002/pkg/httpx"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(appCfg config.AppConfig, chatSvc *chatservice.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(appCfg.AllowedOrigins))

	healthHandler := health.New(appCfg.Version)
	r.Get("/health", healthHandler.Handle)

	r.Route("/api", func(api chi.Router) {
		chathandler.New(chatSvc).RegisterRoutes(api)
		stream.New(chatSvc).RegisterRoutes(api)
	})

	// The frontend keys off this exact error string for unknown routes;
	// unsupported methods get the same treatment.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.RespondError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpx.RespondError(w, http.StatusNotFound, "Route not found")
	})

	return r
}
