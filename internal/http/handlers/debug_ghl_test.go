package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jewelryboxai/assistant/internal/ghl"
)

type stubCaller struct {
	err error
}

func (s stubCaller) CallTool(context.Context, string, map[string]any) (map[string]any, error) {
	if s.err != nil {
		return nil, s.err
	}
	return map[string]any{}, nil
}

func (s stubCaller) Calendars() ghl.CalendarMapping {
	return ghl.CalendarMapping{
		Appraisals:    "cal-a",
		CustomJewelry: "cal-c",
		Campaign:      "cal-p",
		Demo:          "cal-d",
	}
}

func TestDebugGHLStatus_Reachable(t *testing.T) {
	h := NewDebugGHLHandler(stubCaller{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/debug/ghl-status", nil)
	rec := httptest.NewRecorder()
	h.Status(rec, req)

	var resp struct {
		Reachable      bool              `json:"reachable"`
		Calendars      map[string]string `json:"calendars"`
		AvailableTools []string          `json:"available_tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Reachable {
		t.Error("expected reachable")
	}
	if resp.Calendars["appraisals"] != "cal-a" {
		t.Errorf("calendars = %v", resp.Calendars)
	}
	if len(resp.AvailableTools) == 0 {
		t.Error("expected tool list")
	}
}

func TestDebugGHLStatus_Unreachable(t *testing.T) {
	h := NewDebugGHLHandler(stubCaller{err: errors.New("connection refused")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/debug/ghl-status", nil)
	rec := httptest.NewRecorder()
	h.Status(rec, req)

	var resp struct {
		Reachable  bool   `json:"reachable"`
		ProbeError string `json:"probe_error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reachable {
		t.Error("expected unreachable")
	}
	if resp.ProbeError == "" {
		t.Error("expected probe error detail")
	}
}
