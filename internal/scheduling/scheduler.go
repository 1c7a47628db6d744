// Package scheduling orchestrates appointment booking: it turns a chat
// transcript plus verified customer identity into a single remote scheduling
// call against the GHL MCP server.
package scheduling

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jewelryboxai/assistant/internal/conversation"
	"github.com/jewelryboxai/assistant/internal/ghl"
	"github.com/jewelryboxai/assistant/internal/observability/metrics"
	"github.com/jewelryboxai/assistant/pkg/logging"
)

var tracer = otel.Tracer("jewelrybox.internal.scheduling")

const missingCustomerInfoError = "Missing required customer information (name, email, phone)"

// SchedulingClient is the remote call surface the scheduler needs.
// *ghl.Client satisfies it.
type SchedulingClient interface {
	CreateContactAndSchedule(ctx context.Context, name, email, phone, notes, calendarID, startTime string) (map[string]any, error)
	Calendars() ghl.CalendarMapping
}

// Request carries everything needed to schedule from a conversation.
// All three identity fields must be non-empty before any I/O happens.
type Request struct {
	Messages        []conversation.ChatMessage
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	PreferredTime   string
	AppointmentType string
}

// Result is the normalized outcome of a scheduling attempt. Every failure
// mode — validation, transport, or remote-reported — collapses into the same
// shape; nothing escapes the scheduler as a panic or raw error.
type Result struct {
	Success         bool           `json:"success"`
	Error           string         `json:"error,omitempty"`
	Remote          map[string]any `json:"result,omitempty"`
	AppointmentTime string         `json:"appointment_time,omitempty"`
	CalendarType    string         `json:"calendar_type,omitempty"`
	CalendarID      string         `json:"calendar_id,omitempty"`
}

// Scheduler coordinates contact extraction, calendar selection, and the
// remote scheduling call.
type Scheduler struct {
	client  SchedulingClient
	logger  *logging.Logger
	metrics *metrics.AssistantMetrics
}

// NewScheduler creates an appointment scheduler. metrics may be nil.
func NewScheduler(client SchedulingClient, logger *logging.Logger, m *metrics.AssistantMetrics) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{client: client, logger: logger, metrics: m}
}

// Schedule adapts extracted contact details into a scheduling attempt and
// renders the outcome as a customer-facing sentence. The bool reports whether
// the appointment was actually booked.
func (s *Scheduler) Schedule(ctx context.Context, messages []conversation.ChatMessage, info conversation.ContactInfo, preferredTime string) (string, bool) {
	result := s.ScheduleFromConversation(ctx, Request{
		Messages:      messages,
		CustomerName:  info.Name,
		CustomerEmail: info.Email,
		CustomerPhone: info.Phone,
		PreferredTime: preferredTime,
	})
	if !result.Success {
		return "I wasn't able to book that appointment just now. Our team will follow up with you shortly to confirm a time.", false
	}
	label := strings.ReplaceAll(result.CalendarType, "_", " ")
	return fmt.Sprintf("You're all set, %s! I've booked your %s appointment for %s. A confirmation will arrive by email shortly.",
		info.Name, label, result.AppointmentTime), true
}

// ScheduleFromConversation books an appointment from conversation data.
// The whole call is one unit: no retries, exactly one remote call in flight.
func (s *Scheduler) ScheduleFromConversation(ctx context.Context, req Request) Result {
	ctx, span := tracer.Start(ctx, "scheduling.from_conversation")
	defer span.End()

	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" {
		s.metrics.ObserveScheduling("none", "validation_failed")
		return Result{Success: false, Error: missingCustomerInfoError}
	}

	if req.AppointmentType == "" {
		req.AppointmentType = "consultation"
	}

	notes := conversation.SummarizeConversation(req.Messages, conversation.DefaultSummaryLength)

	contents := make([]string, 0, len(req.Messages))
	for _, msg := range req.Messages {
		contents = append(contents, msg.Content)
	}
	calendars := s.client.Calendars()
	calendarID := SelectCalendar(calendars, strings.Join(contents, " "))

	appointmentTime := SuggestAppointmentTime(req.PreferredTime)

	span.SetAttributes(
		attribute.String("jewelrybox.calendar_id", calendarID),
		attribute.String("jewelrybox.appointment_type", req.AppointmentType),
	)

	remote, err := s.client.CreateContactAndSchedule(ctx, req.CustomerName, req.CustomerEmail, req.CustomerPhone, notes, calendarID, appointmentTime)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveScheduling(calendars.TypeOf(calendarID), "transport_error")
		s.logger.Error("scheduling failed", "error", err, "calendar_id", calendarID)
		return Result{Success: false, Error: err.Error()}
	}

	// The remote server reports its own failures inside an otherwise
	// successful HTTP response.
	if remoteErr, ok := remote["error"]; ok {
		msg := fmt.Sprintf("%v", remoteErr)
		s.metrics.ObserveScheduling(calendars.TypeOf(calendarID), "remote_error")
		s.logger.Error("scheduling rejected by remote", "error", msg, "calendar_id", calendarID)
		return Result{Success: false, Error: msg}
	}

	s.metrics.ObserveScheduling(calendars.TypeOf(calendarID), "success")
	s.logger.Info("appointment scheduled",
		"customer", req.CustomerName,
		"calendar_id", calendarID,
		"appointment_time", appointmentTime,
	)
	return Result{
		Success:         true,
		Remote:          remote,
		AppointmentTime: appointmentTime,
		CalendarType:    calendars.TypeOf(calendarID),
		CalendarID:      calendarID,
	}
}
