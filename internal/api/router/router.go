package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jewelryboxai/assistant/internal/http/handlers"
	httpmiddleware "github.com/jewelryboxai/assistant/internal/http/middleware"
	"github.com/jewelryboxai/assistant/internal/webchat"
	"github.com/jewelryboxai/assistant/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	WebchatHandler     *webchat.Handler
	DebugGHL           *handlers.DebugGHLHandler
	MetricsHandler     http.Handler
	AdminAuthSecret    string
	CORSAllowedOrigins []string

	// ChatRate limits chat turns per IP per second; 0 disables.
	ChatRate  float64
	ChatBurst int
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handleHealth)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.WebchatHandler != nil {
		r.Get("/widget.js", cfg.WebchatHandler.HandleWidgetJS)
		r.Get("/ws", cfg.WebchatHandler.HandleWebSocket)
		r.Group(func(chat chi.Router) {
			if cfg.ChatRate > 0 {
				chat.Use(httpmiddleware.RateLimit(cfg.ChatRate, cfg.ChatBurst))
			}
			chat.Post("/chat", cfg.WebchatHandler.HandleChat)
			chat.Post("/chat/clear", cfg.WebchatHandler.HandleClear)
			chat.Get("/chat/history", cfg.WebchatHandler.HandleHistory)
		})
	}

	// Admin debug routes (JWT protected).
	if cfg.AdminAuthSecret != "" && cfg.DebugGHL != nil {
		r.Route("/debug", func(debug chi.Router) {
			debug.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			debug.Get("/ghl-status", cfg.DebugGHL.Status)
		})
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "jewelrybox-assistant"})
}
