package metric_events

import (
	"time"

	"github.com/google/uuid"
)

const SearchType = "search"

// Event is the telemetry record of one search request.
type Event struct {
	TraceID        string   `json:"trace_id"`
	Type           string   `json:"type"`
	Path           string   `json:"path"`
	Method         string   `json:"method,omitempty"`
	Query          string   `json:"query"`
	Mode           string   `json:"mode"`
	Fallback       bool     `json:"fallback"`
	FallbackReason string   `json:"fallback_reason,omitempty"`
	ResultCount    int      `json:"result_count"`
	ToolIDs        []string `json:"tool_ids,omitempty"`
	StatusCode     int      `json:"status_code"`
	Error          string   `json:"error,omitempty"`
	StartTimestamp int64    `json:"start_timestamp"`
	EndTimestamp   int64    `json:"end_timestamp"`
	Latency        int64    `json:"latency"`

	IP      string `json:"user_ip,omitempty"`
	Locale  string `json:"locale,omitempty"`
	Device  string `json:"device,omitempty"`
	Os      string `json:"os,omitempty"`
	Browser string `json:"browser,omitempty"`
}

func NewSearchEvent(start time.Time) *Event {
	return &Event{
		TraceID:        uuid.New().String(),
		Type:           SearchType,
		StartTimestamp: start.Unix(),
	}
}

// Finish stamps the end time and latency.
func (evt *Event) Finish(start, end time.Time) {
	evt.EndTimestamp = end.Unix()
	evt.Latency = end.Sub(start).Milliseconds()
}
