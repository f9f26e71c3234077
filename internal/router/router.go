package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/handlers"
	"github.com/IRONalways17/LLM-Custom-Bot/internal/middleware"
)

// NewRelay wires the public chat API.
func NewRelay(
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	logger *zap.Logger,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(frontendURL))

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Post("/chat", chatHandler.Chat)

	return r
}

// NewGenerator wires the Gemini-backed generation service.
func NewGenerator(
	generateHandler *handlers.GenerateHandler,
	healthHandler *handlers.HealthHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Post("/generate", generateHandler.Generate)

	return r
}
