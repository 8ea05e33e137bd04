package models

import "github.com/tarsy-labs/agentcore/ent"

// CreateBudgetRequest contains fields for creating an autonomy budget draft.
type CreateBudgetRequest struct {
	TenantID  string         `json:"tenant_id"`
	Name      string         `json:"name"`
	AgentName string         `json:"agent_name,omitempty"`
	Spec      map[string]any `json:"spec"`
}

// TransitionBudgetRequest moves a budget through its lifecycle.
type TransitionBudgetRequest struct {
	State      string `json:"state"`
	ApprovedBy string `json:"approved_by,omitempty"`
}

// BudgetResponse wraps an AutonomyBudget.
type BudgetResponse struct {
	*ent.AutonomyBudget
}

// BudgetListResponse contains a paginated budget list.
type BudgetListResponse struct {
	Budgets    []*ent.AutonomyBudget `json:"budgets"`
	TotalCount int                   `json:"total_count"`
}
