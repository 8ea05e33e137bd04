package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/autonomybudget"
	"github.com/tarsy-labs/agentcore/pkg/autonomy"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// BudgetService persists autonomy budgets and enforces their lifecycle
// graph on every transition.
type BudgetService struct {
	client *ent.Client
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(client *ent.Client) *BudgetService {
	return &BudgetService{client: client}
}

// CreateBudget creates a budget draft.
func (s *BudgetService) CreateBudget(httpCtx context.Context, req models.CreateBudgetRequest) (*ent.AutonomyBudget, error) {
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Spec == nil {
		return nil, NewValidationError("spec", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	budget, err := s.client.AutonomyBudget.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetName(req.Name).
		SetAgentName(req.AgentName).
		SetState(autonomybudget.StateDraft).
		SetSpec(req.Spec).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return budget, nil
}

// GetBudget retrieves a budget by ID.
func (s *BudgetService) GetBudget(ctx context.Context, budgetID string) (*ent.AutonomyBudget, error) {
	budget, err := s.client.AutonomyBudget.Get(ctx, budgetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// Transition moves a budget through its lifecycle. The edge is validated
// against the fixed transition graph; activation also stamps approval.
func (s *BudgetService) Transition(ctx context.Context, budgetID string, req models.TransitionBudgetRequest) (*ent.AutonomyBudget, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	budget, err := s.client.AutonomyBudget.Get(writeCtx, budgetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	// Validate the edge with the in-memory lifecycle model.
	b := autonomy.Budget{Status: autonomy.BudgetStatus(budget.State)}
	if err := b.Transition(autonomy.BudgetStatus(req.State)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateTransition, err)
	}

	update := budget.Update().SetState(autonomybudget.State(req.State))
	if autonomy.BudgetStatus(req.State) == autonomy.StatusActive {
		update = update.SetApprovedAt(time.Now())
		if req.ApprovedBy != "" {
			update = update.SetApprovedBy(req.ApprovedBy)
		}
	}

	budget, err = update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition budget: %w", err)
	}
	return budget, nil
}

// GetActiveBudgetForAgent returns the newest active budget bound to an
// agent, or ErrNotFound.
func (s *BudgetService) GetActiveBudgetForAgent(ctx context.Context, tenantID, agentName string) (*ent.AutonomyBudget, error) {
	budget, err := s.client.AutonomyBudget.Query().
		Where(
			autonomybudget.TenantIDEQ(tenantID),
			autonomybudget.AgentNameEQ(agentName),
			autonomybudget.StateEQ(autonomybudget.StateActive),
		).
		Order(ent.Desc(autonomybudget.FieldApprovedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active budget: %w", err)
	}
	return budget, nil
}

// ExpireOverdueBudgets moves active budgets past their expiry to expired.
func (s *BudgetService) ExpireOverdueBudgets(ctx context.Context) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.AutonomyBudget.Update().
		Where(
			autonomybudget.StateEQ(autonomybudget.StateActive),
			autonomybudget.ExpiresAtNotNil(),
			autonomybudget.ExpiresAtLT(time.Now()),
		).
		SetState(autonomybudget.StateExpired).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire budgets: %w", err)
	}
	return count, nil
}

// ListBudgets lists budgets for a tenant, newest first.
func (s *BudgetService) ListBudgets(ctx context.Context, tenantID string, limit int) (*models.BudgetListResponse, error) {
	query := s.client.AutonomyBudget.Query()
	if tenantID != "" {
		query = query.Where(autonomybudget.TenantIDEQ(tenantID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count budgets: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	budgets, err := query.
		Limit(limit).
		Order(ent.Desc(autonomybudget.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &models.BudgetListResponse{Budgets: budgets, TotalCount: totalCount}, nil
}
