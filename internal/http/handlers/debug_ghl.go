package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jewelryboxai/assistant/internal/ghl"
	"github.com/jewelryboxai/assistant/pkg/logging"
)

// ToolCaller is the probe surface of the GHL client.
type ToolCaller interface {
	CallTool(ctx context.Context, toolName string, arguments map[string]any) (map[string]any, error)
	Calendars() ghl.CalendarMapping
}

// DebugGHLHandler reports scheduling-backend configuration and connectivity.
// Mounted behind admin auth only.
type DebugGHLHandler struct {
	client ToolCaller
	logger *logging.Logger
}

func NewDebugGHLHandler(client ToolCaller, logger *logging.Logger) *DebugGHLHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DebugGHLHandler{client: client, logger: logger}
}

// Status probes the MCP server with a read-only tool call and returns the
// calendar mapping alongside reachability.
func (h *DebugGHLHandler) Status(w http.ResponseWriter, r *http.Request) {
	calendars := h.client.Calendars()

	probeCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reachable := true
	var probeErr string
	if _, err := h.client.CallTool(probeCtx, ghl.ToolGetPipelineInfo, nil); err != nil {
		reachable = false
		probeErr = err.Error()
		h.logger.Warn("ghl status probe failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"reachable":   reachable,
		"probe_error": probeErr,
		"calendars": map[string]string{
			ghl.CalendarAppraisals:    calendars.Appraisals,
			ghl.CalendarCustomJewelry: calendars.CustomJewelry,
			ghl.CalendarCampaign:      calendars.Campaign,
			ghl.CalendarDemo:          calendars.Demo,
		},
		"available_tools": ghl.AvailableTools(),
	})
}
