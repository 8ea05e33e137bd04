package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/ent/autonomybudget"
	"github.com/tarsy-labs/agentcore/pkg/models"
	testdb "github.com/tarsy-labs/agentcore/test/database"
)

func TestBudgetLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewBudgetService(client.Client)
	ctx := context.Background()

	budget, err := svc.CreateBudget(ctx, models.CreateBudgetRequest{
		TenantID:  "tenant-a",
		Name:      "implementer-envelope",
		AgentName: "implementer",
		Spec: map[string]any{
			"scope":  map[string]any{"in_scope": []any{"src/**"}},
			"limits": map[string]any{"max_iterations": 20, "max_tool_calls": 50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, autonomybudget.StateDraft, budget.State)

	budget, err = svc.Transition(ctx, budget.ID, models.TransitionBudgetRequest{State: "pending_approval"})
	require.NoError(t, err)
	assert.Equal(t, autonomybudget.StatePendingApproval, budget.State)

	budget, err = svc.Transition(ctx, budget.ID, models.TransitionBudgetRequest{
		State:      "active",
		ApprovedBy: "lead@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, autonomybudget.StateActive, budget.State)
	assert.NotNil(t, budget.ApprovedAt)
	assert.Equal(t, "lead@example.com", budget.ApprovedBy)

	// active -> draft is not an edge of the lifecycle graph.
	_, err = svc.Transition(ctx, budget.ID, models.TransitionBudgetRequest{State: "draft"})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	// Completed is terminal.
	budget, err = svc.Transition(ctx, budget.ID, models.TransitionBudgetRequest{State: "completed"})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, budget.ID, models.TransitionBudgetRequest{State: "active"})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestGetActiveBudgetForAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewBudgetService(client.Client)
	ctx := context.Background()

	_, err := svc.GetActiveBudgetForAgent(ctx, "tenant-a", "reviewer")
	assert.ErrorIs(t, err, ErrNotFound)

	budget, err := svc.CreateBudget(ctx, models.CreateBudgetRequest{
		TenantID:  "tenant-a",
		Name:      "reviewer-envelope",
		AgentName: "reviewer",
		Spec:      map[string]any{"limits": map[string]any{"max_iterations": 5}},
	})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, budget.ID, models.TransitionBudgetRequest{State: "active"})
	require.NoError(t, err)

	active, err := svc.GetActiveBudgetForAgent(ctx, "tenant-a", "reviewer")
	require.NoError(t, err)
	assert.Equal(t, budget.ID, active.ID)
}
