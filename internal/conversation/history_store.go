package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const sessionTTL = 24 * time.Hour

// HistoryStore keeps per-session chat history in Redis. Sessions are keyed
// explicitly — there is no process-global transcript shared across callers.
type HistoryStore struct {
	redis  *redis.Client
	tracer trace.Tracer
}

// NewHistoryStore creates a Redis-backed history store.
func NewHistoryStore(redisClient *redis.Client) *HistoryStore {
	if redisClient == nil {
		panic("conversation: redis client cannot be nil")
	}
	return &HistoryStore{
		redis:  redisClient,
		tracer: otel.Tracer("jewelrybox.internal.conversation.history"),
	}
}

// Save persists the rolling history for a session with a TTL refresh.
func (s *HistoryStore) Save(ctx context.Context, sessionID string, history []ChatMessage) error {
	ctx, span := s.tracer.Start(ctx, "conversation.save_history")
	defer span.End()

	data, err := json.Marshal(history)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: failed to marshal history: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(sessionID), data, sessionTTL).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: failed to persist history: %w", err)
	}
	return nil
}

// Load returns the stored history for a session. An unknown session yields
// an empty history, not an error — every session starts empty.
func (s *HistoryStore) Load(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	ctx, span := s.tracer.Start(ctx, "conversation.load_history")
	defer span.End()

	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("conversation: failed to load history: %w", err)
	}

	var history []ChatMessage
	if err := json.Unmarshal(data, &history); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("conversation: failed to decode history: %w", err)
	}
	return history, nil
}

// Clear removes a single session's history.
func (s *HistoryStore) Clear(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "conversation.clear_history")
	defer span.End()

	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: failed to clear history: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("conversation:%s", id)
}
