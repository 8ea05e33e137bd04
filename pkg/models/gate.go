package models

import "github.com/tarsy-labs/agentcore/ent"

// EvaluateGateRequest contains fields for requesting a gate evaluation.
type EvaluateGateRequest struct {
	TenantID    string             `json:"tenant_id"`
	Gate        string             `json:"gate"`
	ReleaseID   string             `json:"release_id,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
	TaskResults []GateTaskResult   `json:"task_results,omitempty"`
}

// GateTaskResult is one canonical task outcome submitted with an evaluation.
type GateTaskResult struct {
	TaskID string `json:"task_id"`
	Tag    string `json:"tag"`
	Status string `json:"status"` // pass, fail, skip
}

// GateReportResponse wraps a persisted GateReport.
type GateReportResponse struct {
	*ent.GateReport
}

// GateReportListResponse contains a paginated gate report list.
type GateReportListResponse struct {
	Reports    []*ent.GateReport `json:"reports"`
	TotalCount int               `json:"total_count"`
}
