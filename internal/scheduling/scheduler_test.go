package scheduling

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jewelryboxai/assistant/internal/conversation"
	"github.com/jewelryboxai/assistant/internal/ghl"
)

type fakeClient struct {
	calls     int
	remote    map[string]any
	err       error
	lastNotes string
	lastCalID string
	lastStart string
}

func (f *fakeClient) CreateContactAndSchedule(_ context.Context, name, email, phone, notes, calendarID, startTime string) (map[string]any, error) {
	f.calls++
	f.lastNotes = notes
	f.lastCalID = calendarID
	f.lastStart = startTime
	if f.err != nil {
		return nil, f.err
	}
	return f.remote, nil
}

func (f *fakeClient) Calendars() ghl.CalendarMapping { return testCalendars }

func validRequest() Request {
	return Request{
		Messages: []conversation.ChatMessage{
			{Role: conversation.ChatRoleUser, Content: "I need my ring appraised"},
			{Role: conversation.ChatRoleAssistant, Content: "Happy to set that up"},
		},
		CustomerName:  "Sarah Jones",
		CustomerEmail: "sarah@example.com",
		CustomerPhone: "(555) 987-6543",
	}
}

func TestScheduler_MissingInfoFailsWithoutRemoteCall(t *testing.T) {
	client := &fakeClient{}
	s := NewScheduler(client, nil, nil)

	for _, req := range []Request{
		{CustomerEmail: "a@b.com", CustomerPhone: "(555) 111-2222"},
		{CustomerName: "A", CustomerPhone: "(555) 111-2222"},
		{CustomerName: "A", CustomerEmail: "a@b.com"},
		{},
	} {
		result := s.ScheduleFromConversation(context.Background(), req)
		if result.Success {
			t.Errorf("expected failure for %+v", req)
		}
		if result.Error != "Missing required customer information (name, email, phone)" {
			t.Errorf("unexpected error message: %q", result.Error)
		}
	}
	if client.calls != 0 {
		t.Errorf("validation failures must not reach the network, got %d calls", client.calls)
	}
}

func TestScheduler_Success(t *testing.T) {
	client := &fakeClient{remote: map[string]any{"contact_id": "c-123"}}
	s := NewScheduler(client, nil, nil)

	result := s.ScheduleFromConversation(context.Background(), validRequest())
	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if client.calls != 1 {
		t.Fatalf("expected exactly one remote call, got %d", client.calls)
	}
	if result.CalendarID != "cal-appraisals" {
		t.Errorf("CalendarID = %q, want appraisals calendar", result.CalendarID)
	}
	if result.CalendarType != ghl.CalendarAppraisals {
		t.Errorf("CalendarType = %q", result.CalendarType)
	}
	if result.Remote["contact_id"] != "c-123" {
		t.Errorf("remote payload not propagated: %v", result.Remote)
	}
	if !strings.HasPrefix(client.lastNotes, "Conversation Summary: ") {
		t.Errorf("notes should carry the conversation summary, got %q", client.lastNotes)
	}
	if result.AppointmentTime == "" || result.AppointmentTime != client.lastStart {
		t.Errorf("appointment time mismatch: %q vs %q", result.AppointmentTime, client.lastStart)
	}
}

func TestScheduler_PreferredTimePassesThrough(t *testing.T) {
	client := &fakeClient{remote: map[string]any{}}
	s := NewScheduler(client, nil, nil)

	req := validRequest()
	req.PreferredTime = "2024-02-15T14:30:00"
	result := s.ScheduleFromConversation(context.Background(), req)
	if !result.Success {
		t.Fatalf("unexpected failure: %q", result.Error)
	}
	if client.lastStart != "2024-02-15T14:30:00" {
		t.Errorf("preferred time must reach the client unmodified, got %q", client.lastStart)
	}
}

func TestScheduler_TransportErrorBecomesFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("ghl: mcp server communication failed: connection refused")}
	s := NewScheduler(client, nil, nil)

	result := s.ScheduleFromConversation(context.Background(), validRequest())
	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Error, "communication failed") {
		t.Errorf("error not propagated: %q", result.Error)
	}
}

func TestScheduler_RemoteErrorKeyBecomesFailure(t *testing.T) {
	client := &fakeClient{remote: map[string]any{"error": "calendar fully booked"}}
	s := NewScheduler(client, nil, nil)

	result := s.ScheduleFromConversation(context.Background(), validRequest())
	if result.Success {
		t.Fatal("expected failure when the remote reports an error")
	}
	if result.Error != "calendar fully booked" {
		t.Errorf("Error = %q", result.Error)
	}
}

func TestScheduler_Schedule_RendersOutcome(t *testing.T) {
	client := &fakeClient{remote: map[string]any{}}
	s := NewScheduler(client, nil, nil)

	msgs := []conversation.ChatMessage{{Role: conversation.ChatRoleUser, Content: "custom ring please"}}
	info := conversation.ContactInfo{Name: "Sarah", Email: "s@example.com", Phone: "(555) 111-2222"}

	reply, ok := s.Schedule(context.Background(), msgs, info, "")
	if !ok {
		t.Fatal("expected booking to succeed")
	}
	if !strings.Contains(reply, "Sarah") || !strings.Contains(reply, "custom jewelry") {
		t.Errorf("unexpected reply: %q", reply)
	}

	client.err = errors.New("down")
	reply, ok = s.Schedule(context.Background(), msgs, info, "")
	if ok {
		t.Fatal("expected booking to fail")
	}
	if !strings.Contains(reply, "follow up") {
		t.Errorf("unexpected failure reply: %q", reply)
	}
}
