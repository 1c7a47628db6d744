package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jewelryboxai/assistant/internal/conversation"
	"github.com/jewelryboxai/assistant/internal/ghl"
	"github.com/jewelryboxai/assistant/internal/http/handlers"
	"github.com/jewelryboxai/assistant/internal/webchat"
)

type stubChat struct{}

func (stubChat) ProcessMessage(_ context.Context, sessionID, message string) (*conversation.Reply, error) {
	return &conversation.Reply{
		SessionID: sessionID,
		Message:   "echo: " + message,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (stubChat) History(context.Context, string) ([]conversation.ChatMessage, error) {
	return nil, nil
}

func (stubChat) ClearSession(context.Context, string) error { return nil }

type stubToolCaller struct{}

func (stubToolCaller) CallTool(context.Context, string, map[string]any) (map[string]any, error) {
	return map[string]any{}, nil
}

func (stubToolCaller) Calendars() ghl.CalendarMapping {
	return ghl.CalendarMapping{Demo: "cal-demo"}
}

func newTestRouter(t *testing.T, adminSecret string) http.Handler {
	t.Helper()
	return New(&Config{
		WebchatHandler:  webchat.NewHandler(stubChat{}, []byte("js"), nil),
		DebugGHL:        handlers.NewDebugGHLHandler(stubToolCaller{}, nil),
		AdminAuthSecret: adminSecret,
	})
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRouter_ChatRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"session_id":"s1","message":"hello"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /chat status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "echo: hello") {
		t.Errorf("body = %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/chat/history?session=s1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /chat/history status = %d", rec.Code)
	}
}

func TestRouter_WidgetJS(t *testing.T) {
	r := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/widget.js", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "js" {
		t.Fatalf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_DebugRequiresAuth(t *testing.T) {
	r := newTestRouter(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/debug/ghl-status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated debug request: status = %d", rec.Code)
	}

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest(http.MethodGet, "/debug/ghl-status", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated debug request: status = %d", rec.Code)
	}
}

func TestRouter_DebugHiddenWithoutSecret(t *testing.T) {
	r := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/debug/ghl-status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("debug routes should not exist without a secret, status = %d", rec.Code)
	}
}
