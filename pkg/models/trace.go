package models

import (
	"time"

	"github.com/tarsy-labs/agentcore/ent"
)

// TraceFilters contains filtering options for listing persisted traces.
type TraceFilters struct {
	TenantID string `json:"tenant_id,omitempty"`
	Status   string `json:"status,omitempty"`
	TaskID   string `json:"task_id,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// FailureFilters contains filtering options for listing failure records.
type FailureFilters struct {
	TenantID string `json:"tenant_id,omitempty"`
	Category string `json:"category,omitempty"`
	Subcode  string `json:"subcode,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// TraceResponse wraps a persisted TraceRecord.
type TraceResponse struct {
	*ent.TraceRecord
}

// TraceListResponse contains a paginated trace list.
type TraceListResponse struct {
	Traces     []*ent.TraceRecord `json:"traces"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// FailureListResponse contains a paginated failure list.
type FailureListResponse struct {
	Failures   []*ent.FailureRecord `json:"failures"`
	TotalCount int                  `json:"total_count"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
}

// PersistTraceRequest is the flush payload from the in-memory collector to
// the durable store when a trace completes.
type PersistTraceRequest struct {
	TraceID         string           `json:"trace_id"`
	TenantID        string           `json:"tenant_id"`
	TaskID          string           `json:"task_id,omitempty"`
	SessionID       string           `json:"session_id,omitempty"`
	RunID           string           `json:"run_id"`
	AgentID         string           `json:"agent_id"`
	AgentRole       string           `json:"agent_role"`
	Model           string           `json:"model"`
	Status          string           `json:"status"`
	FailureCode     string           `json:"failure_code,omitempty"`
	FailureMessage  string           `json:"failure_message,omitempty"`
	FailureCategory string           `json:"failure_category,omitempty"`
	StartedAt       time.Time        `json:"started_at"`
	CompletedAt     time.Time        `json:"completed_at"`
	Steps           []map[string]any `json:"steps,omitempty"`
}
