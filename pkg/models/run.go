// Package models defines the request/response shapes exchanged between the
// API layer, the services, and the queue. Persistent entities live in ent;
// these types wrap them with API-facing fields.
package models

import (
	"time"

	"github.com/tarsy-labs/agentcore/ent"
)

// SubmitRunRequest contains fields for submitting a new workflow run.
type SubmitRunRequest struct {
	RunID        string         `json:"run_id"`
	TenantID     string         `json:"tenant_id"`
	WorkflowName string         `json:"workflow_name"`
	Trigger      string         `json:"trigger,omitempty"`
	Inputs       map[string]any `json:"inputs,omitempty"`
	Author       string         `json:"author,omitempty"`
}

// RunFilters contains filtering options for listing workflow runs.
type RunFilters struct {
	TenantID       string     `json:"tenant_id,omitempty"`
	Status         string     `json:"status,omitempty"`
	WorkflowName   string     `json:"workflow_name,omitempty"`
	Author         string     `json:"author,omitempty"`
	StartedAfter   *time.Time `json:"started_after,omitempty"`
	StartedBefore  *time.Time `json:"started_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// RunResponse wraps a WorkflowRun with optional loaded edges.
type RunResponse struct {
	*ent.WorkflowRun
}

// RunListResponse contains a paginated run list.
type RunListResponse struct {
	Runs       []*ent.WorkflowRun `json:"runs"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}
