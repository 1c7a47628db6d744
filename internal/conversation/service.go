package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jewelryboxai/assistant/internal/observability/metrics"
	"github.com/jewelryboxai/assistant/pkg/logging"
)

var tracer = otel.Tracer("jewelrybox.internal.conversation")

const (
	completionTimeout     = 30 * time.Second
	completionMaxTokens   = 1024
	completionTemperature = 0.9
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Searcher provides optional live web context for a chat turn.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchSnippet, error)
}

// SearchSnippet is a single piece of web context.
type SearchSnippet struct {
	Title   string
	URL     string
	Content string
}

// KnowledgeBase supplies the system prompt and URL injection.
type KnowledgeBase interface {
	SystemPrompt() string
	InjectURL(userInput, response string) string
}

// AppointmentScheduler books an appointment from conversation data.
type AppointmentScheduler interface {
	Schedule(ctx context.Context, messages []ChatMessage, info ContactInfo, preferredTime string) (reply string, scheduled bool)
}

// Reply is what a chat turn returns to the HTTP layer.
type Reply struct {
	SessionID string        `json:"session_id"`
	Message   string        `json:"reply"`
	History   []ChatMessage `json:"history"`
	Timestamp time.Time     `json:"timestamp"`
}

// Service produces assistant replies using OpenAI with Redis-backed,
// session-keyed context, and hands appointment-intent turns to the scheduler.
type Service struct {
	client    chatClient
	model     string
	kb        KnowledgeBase
	search    Searcher
	scheduler AppointmentScheduler
	history   *HistoryStore
	metrics   *metrics.AssistantMetrics
	logger    *logging.Logger
}

// WithMetrics attaches chat metrics. Nil-safe; returns s for chaining.
func (s *Service) WithMetrics(m *metrics.AssistantMetrics) *Service {
	s.metrics = m
	return s
}

// NewService returns the chat engine.
func NewService(client chatClient, history *HistoryStore, kb KnowledgeBase, search Searcher, scheduler AppointmentScheduler, model string, logger *logging.Logger) *Service {
	if client == nil {
		panic("conversation: chat client cannot be nil")
	}
	if history == nil {
		panic("conversation: history store cannot be nil")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		client:    client,
		model:     model,
		kb:        kb,
		search:    search,
		scheduler: scheduler,
		history:   history,
		logger:    logger,
	}
}

// ProcessMessage runs one chat turn: load session history, generate a reply,
// handle scheduling intent, persist the updated history.
func (s *Service) ProcessMessage(ctx context.Context, sessionID, message string) (*Reply, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.New("conversation: sessionID required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, errors.New("conversation: message required")
	}

	ctx, span := tracer.Start(ctx, "conversation.message")
	defer span.End()
	span.SetAttributes(attribute.String("jewelrybox.session_id", sessionID))

	history, err := s.history.Load(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	reply, err := s.generateResponse(ctx, history, message)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveChatTurn("webchat", "error")
		return nil, err
	}
	if s.kb != nil {
		reply = s.kb.InjectURL(message, reply)
	}

	history = append(history, ChatMessage{Role: ChatRoleUser, Content: message})

	if s.scheduler != nil && IsAppointmentRequest(message) {
		reply = s.handleAppointmentIntent(ctx, history, reply)
	}

	history = append(history, ChatMessage{Role: ChatRoleAssistant, Content: reply})
	if err := s.history.Save(ctx, sessionID, history); err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.metrics.ObserveChatTurn("webchat", "ok")
	return &Reply{
		SessionID: sessionID,
		Message:   reply,
		History:   history,
		Timestamp: time.Now().UTC(),
	}, nil
}

// History returns the stored transcript for a session.
func (s *Service) History(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	return s.history.Load(ctx, sessionID)
}

// ClearSession drops a single session's history.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	return s.history.Clear(ctx, sessionID)
}

// handleAppointmentIntent extracts contact details from the transcript and
// either books the appointment or asks for what is still missing.
func (s *Service) handleAppointmentIntent(ctx context.Context, history []ChatMessage, reply string) string {
	blob := strings.Builder{}
	for _, msg := range history {
		if msg.Role == ChatRoleUser {
			blob.WriteString(msg.Content)
			blob.WriteString(" ")
		}
	}
	info := ExtractContactInfo(blob.String())

	if info.Name == "" || info.Email == "" || info.Phone == "" {
		missing := missingFields(info)
		return reply + "\n\nTo book your appointment I just need your " + strings.Join(missing, ", ") + "."
	}

	outcome, scheduled := s.scheduler.Schedule(ctx, history, info, "")
	if scheduled {
		s.logger.Info("appointment booked from chat", "customer", info.Name)
	}
	return reply + "\n\n" + outcome
}

func missingFields(info ContactInfo) []string {
	var missing []string
	if info.Name == "" {
		missing = append(missing, "name")
	}
	if info.Email == "" {
		missing = append(missing, "email")
	}
	if info.Phone == "" {
		missing = append(missing, "phone number")
	}
	return missing
}

func (s *Service) generateResponse(ctx context.Context, history []ChatMessage, message string) (string, error) {
	ctx, span := tracer.Start(ctx, "conversation.openai")
	defer span.End()

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+3)
	if s.kb != nil {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: s.kb.SystemPrompt(),
		})
	}
	if webCtx := s.webContext(ctx, message); webCtx != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: webCtx,
		})
	}
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})

	callCtx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	s.metrics.ObserveCompletion(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("conversation: openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("conversation: openai returned no choices")
		span.RecordError(err)
		return "", err
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// webContext fetches live search snippets for jewelry-related questions.
// Search failures never block the reply.
func (s *Service) webContext(ctx context.Context, query string) string {
	if s.search == nil {
		return ""
	}
	snippets, err := s.search.Search(ctx, query, 3)
	if err != nil || len(snippets) == 0 {
		if err != nil {
			s.logger.Debug("web search unavailable", "error", err)
		}
		return ""
	}
	builder := strings.Builder{}
	builder.WriteString("Relevant web results:\n")
	for i, snip := range snippets {
		builder.WriteString(fmt.Sprintf("%d. %s (%s): %s\n", i+1, snip.Title, snip.URL, snip.Content))
	}
	return builder.String()
}
