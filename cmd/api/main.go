package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jewelryboxai/assistant/internal/api/router"
	appconfig "github.com/jewelryboxai/assistant/internal/config"
	"github.com/jewelryboxai/assistant/internal/conversation"
	"github.com/jewelryboxai/assistant/internal/ghl"
	"github.com/jewelryboxai/assistant/internal/http/handlers"
	"github.com/jewelryboxai/assistant/internal/knowledge"
	"github.com/jewelryboxai/assistant/internal/observability/metrics"
	"github.com/jewelryboxai/assistant/internal/scheduling"
	"github.com/jewelryboxai/assistant/internal/webchat"
	"github.com/jewelryboxai/assistant/internal/websearch"
	"github.com/jewelryboxai/assistant/pkg/logging"
)

// searchAdapter gates web search behind the jewelry-topic heuristic and maps
// results into chat context snippets.
type searchAdapter struct {
	client *websearch.Client
}

func (a *searchAdapter) Search(ctx context.Context, query string, maxResults int) ([]conversation.SearchSnippet, error) {
	if !websearch.ShouldSearch(query) {
		return nil, nil
	}
	results, err := a.client.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	snippets := make([]conversation.SearchSnippet, 0, len(results))
	for _, r := range results {
		snippets = append(snippets, conversation.SearchSnippet{Title: r.Title, URL: r.URL, Content: r.Content})
	}
	return snippets, nil
}

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting jewelrybox assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	kb, err := knowledge.Load(cfg.PromptFile, cfg.IntentsFile)
	if err != nil {
		logger.Error("failed to load knowledge base", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	cancelPing()

	m := metrics.NewAssistantMetrics(nil)

	calendars := ghl.CalendarMapping{
		Appraisals:    cfg.CalendarAppraisalsID,
		CustomJewelry: cfg.CalendarCustomID,
		Campaign:      cfg.CalendarCampaignID,
		Demo:          cfg.CalendarDemoID,
	}
	ghlClient := ghl.NewClient(cfg.GHLMCPServerURL, calendars, logger,
		ghl.WithTimeout(cfg.GHLTimeout),
		ghl.WithMetrics(m),
	)
	scheduler := scheduling.NewScheduler(ghlClient, logger, m)

	var search conversation.Searcher
	if ws := websearch.NewClient(cfg.TavilyAPIKey, logger); ws.Enabled() {
		search = &searchAdapter{client: ws}
	} else {
		logger.Info("web search disabled, no Tavily API key configured")
	}

	historyStore := conversation.NewHistoryStore(redisClient)
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	chatService := conversation.NewService(openaiClient, historyStore, kb, search, scheduler, cfg.OpenAIModel, logger).WithMetrics(m)

	webchatHandler := webchat.NewHandler(chatService, nil, logger)
	debugGHL := handlers.NewDebugGHLHandler(ghlClient, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		WebchatHandler:     webchatHandler,
		DebugGHL:           debugGHL,
		MetricsHandler:     promhttp.Handler(),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.AllowedOrigins,
		ChatRate:           float64(cfg.ChatRatePerSec),
		ChatBurst:          cfg.ChatBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		logger.Warn("redis close failed", "error", err)
	}

	logger.Info("server stopped")
}
