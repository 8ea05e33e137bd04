package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/failurerecord"
	"github.com/tarsy-labs/agentcore/ent/tracerecord"
	"github.com/tarsy-labs/agentcore/pkg/models"
	"github.com/tarsy-labs/agentcore/pkg/trace"
)

// TraceService persists completed traces and their failure records, and
// serves the trace query surface.
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new TraceService.
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// PersistTrace writes a completed trace from the in-memory collector to
// the durable store. Re-persisting the same trace ID is a no-op.
func (s *TraceService) PersistTrace(httpCtx context.Context, req models.PersistTraceRequest) (*ent.TraceRecord, error) {
	if req.TraceID == "" {
		return nil, NewValidationError("trace_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	durationMs := int(req.CompletedAt.Sub(req.StartedAt).Milliseconds())

	builder := s.client.TraceRecord.Create().
		SetID(req.TraceID).
		SetTenantID(req.TenantID).
		SetTaskID(req.TaskID).
		SetSessionID(req.SessionID).
		SetRunID(req.RunID).
		SetAgentID(req.AgentID).
		SetAgentRole(req.AgentRole).
		SetModel(req.Model).
		SetStatus(tracerecord.Status(req.Status)).
		SetFailureCode(req.FailureCode).
		SetFailureMessage(req.FailureMessage).
		SetFailureCategory(req.FailureCategory).
		SetStartedAt(req.StartedAt).
		SetCompletedAt(req.CompletedAt).
		SetDurationMs(durationMs)

	if req.Steps != nil {
		builder.SetSteps(req.Steps)
	}

	record, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Completion flush is idempotent; return the existing row.
			return s.client.TraceRecord.Get(ctx, req.TraceID)
		}
		return nil, fmt.Errorf("failed to persist trace: %w", err)
	}
	return record, nil
}

// RecordFailure persists one classified failure linked to a trace.
func (s *TraceService) RecordFailure(httpCtx context.Context, traceID, tenantID string, f trace.FailureRecord) (*ent.FailureRecord, error) {
	if traceID == "" {
		return nil, NewValidationError("trace_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.FailureRecord.Create().
		SetID(uuid.New().String()).
		SetTraceID(traceID).
		SetTenantID(tenantID).
		SetCategory(failurerecord.Category(f.Category)).
		SetSeverity(failurerecord.Severity(f.Severity)).
		SetSubcode(f.Subcode).
		SetMessage(f.Message).
		SetRetryable(f.Retryable).
		SetEscalationRequired(f.EscalationRequired)

	if f.Context != nil {
		ctxMap := make(map[string]any, len(f.Context))
		for k, v := range f.Context {
			ctxMap[k] = v
		}
		builder.SetContext(ctxMap)
	}

	record, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record failure: %w", err)
	}
	return record, nil
}

// ListTraces lists persisted traces with filtering and pagination,
// most-recently-started first. Limit defaults to 100.
func (s *TraceService) ListTraces(ctx context.Context, filters models.TraceFilters) (*models.TraceListResponse, error) {
	query := s.client.TraceRecord.Query()

	if filters.TenantID != "" {
		query = query.Where(tracerecord.TenantIDEQ(filters.TenantID))
	}
	if filters.Status != "" {
		query = query.Where(tracerecord.StatusEQ(tracerecord.Status(filters.Status)))
	}
	if filters.TaskID != "" {
		query = query.Where(tracerecord.TaskIDEQ(filters.TaskID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count traces: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	traces, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(tracerecord.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}

	return &models.TraceListResponse{
		Traces:     traces,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListFailures lists failure records with filtering and pagination,
// most-recent first. Limit defaults to 100.
func (s *TraceService) ListFailures(ctx context.Context, filters models.FailureFilters) (*models.FailureListResponse, error) {
	query := s.client.FailureRecord.Query()

	if filters.TenantID != "" {
		query = query.Where(failurerecord.TenantIDEQ(filters.TenantID))
	}
	if filters.Category != "" {
		query = query.Where(failurerecord.CategoryEQ(failurerecord.Category(filters.Category)))
	}
	if filters.Subcode != "" {
		query = query.Where(failurerecord.SubcodeEQ(filters.Subcode))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count failures: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	failures, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(failurerecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list failures: %w", err)
	}

	return &models.FailureListResponse{
		Failures:   failures,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
