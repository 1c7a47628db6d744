package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigins []string

	// OpenAI chat completion settings
	OpenAIAPIKey string
	OpenAIModel  string

	// GoHighLevel MCP scheduling server
	GHLMCPServerURL string
	GHLTimeout      time.Duration

	// Calendar identifiers per category, with demo as the fallback
	CalendarAppraisalsID string
	CalendarCustomID     string
	CalendarCampaignID   string
	CalendarDemoID       string

	// Tavily web search (disabled when the key is empty)
	TavilyAPIKey string

	// Redis-backed session chat history
	RedisAddr     string
	RedisPassword string

	AdminJWTSecret string

	// Per-IP chat rate limiting; a non-positive rate disables it
	ChatRatePerSec int
	ChatBurst      int

	PromptFile  string
	IntentsFile string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "")),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		GHLMCPServerURL: getEnv("GHL_MCP_SERVER_URL", "http://localhost:8000"),
		GHLTimeout:      getEnvAsDuration("GHL_TIMEOUT", 30*time.Second),

		CalendarAppraisalsID: getEnv("GHL_CALENDAR_APPRAISALS_ID", "CuOcD0x88h7NPvfub9"),
		CalendarCustomID:     getEnv("GHL_CALENDAR_CUSTOM_ID", "GHPSw9oQ8DDQJaJVVQbE"),
		CalendarCampaignID:   getEnv("GHL_CALENDAR_CAMPAIGN_ID", "IRCCTTBGxfhK8pRbNfT"),
		CalendarDemoID:       getEnv("GHL_DEFAULT_CALENDAR_ID", "1a2FZj1zqXPbPnrElQD1"),

		TavilyAPIKey: getEnv("TAVILY_API_KEY", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		ChatRatePerSec: getEnvAsInt("CHAT_RATE_PER_SEC", 2),
		ChatBurst:      getEnvAsInt("CHAT_BURST", 5),

		PromptFile:  getEnv("PROMPT_FILE", "prompts/prompt.json"),
		IntentsFile: getEnv("INTENTS_FILE", "prompts/intents.json"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
