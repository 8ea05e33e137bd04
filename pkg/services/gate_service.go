package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/gatereport"
	"github.com/tarsy-labs/agentcore/pkg/gate"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// GateService runs gate evaluations through the gate engine and persists
// the resulting reports.
type GateService struct {
	client *ent.Client
	engine *gate.Engine
}

// NewGateService creates a new GateService.
func NewGateService(client *ent.Client, engine *gate.Engine) *GateService {
	return &GateService{client: client, engine: engine}
}

// Evaluate runs the gate engine and persists the report.
func (s *GateService) Evaluate(httpCtx context.Context, req models.EvaluateGateRequest) (*gate.Report, *ent.GateReport, error) {
	if req.TenantID == "" {
		return nil, nil, NewValidationError("tenant_id", "required")
	}
	if req.Gate == "" {
		return nil, nil, NewValidationError("gate", "required")
	}

	metricValues := make(map[gate.Metric]float64, len(req.Metrics))
	for k, v := range req.Metrics {
		metricValues[gate.Metric(k)] = v
	}

	taskResults := make([]gate.TaskRunResult, 0, len(req.TaskResults))
	for _, tr := range req.TaskResults {
		taskResults = append(taskResults, gate.TaskRunResult{
			ItemID: tr.TaskID,
			Result: gate.TaskResult(tr.Status),
		})
	}

	report := s.engine.Evaluate(gate.Gate(req.Gate), metricValues, taskResults)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := make(map[string]any, len(req.Metrics))
	for k, v := range req.Metrics {
		metrics[k] = v
	}
	thresholdResults := make([]map[string]any, 0, len(report.CheckResults))
	for _, cr := range report.CheckResults {
		thresholdResults = append(thresholdResults, map[string]any{
			"metric":   string(cr.Threshold.Metric),
			"operator": string(cr.Threshold.Operator),
			"target":   cr.Threshold.Value,
			"actual":   cr.ActualValue,
			"passed":   cr.Passed,
			"action":   string(cr.ActionTaken),
		})
	}
	taskResultRows := make([]map[string]any, 0, len(req.TaskResults))
	for _, tr := range req.TaskResults {
		taskResultRows = append(taskResultRows, map[string]any{
			"task_id": tr.TaskID,
			"tag":     tr.Tag,
			"status":  tr.Status,
		})
	}

	row, err := s.client.GateReport.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetReleaseID(req.ReleaseID).
		SetGate(string(report.Gate)).
		SetOverall(gatereport.Overall(report.Overall)).
		SetMetrics(metrics).
		SetThresholdResults(thresholdResults).
		SetTaskResults(taskResultRows).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to persist gate report: %w", err)
	}
	return &report, row, nil
}

// SaveRegressions attaches detected regression indicators to a report.
func (s *GateService) SaveRegressions(ctx context.Context, reportID string, regressions []gate.Regression) error {
	rows := make([]map[string]any, 0, len(regressions))
	for _, r := range regressions {
		rows = append(rows, map[string]any{
			"indicator":      string(r.Indicator),
			"severity":       string(r.Severity),
			"description":    r.Description,
			"metric":         string(r.Metric),
			"previous_value": r.PreviousValue,
			"current_value":  r.CurrentValue,
			"affected_tasks": r.AffectedTasks,
		})
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.GateReport.UpdateOneID(reportID).
		SetRegressions(rows).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save regressions: %w", err)
	}
	return nil
}

// ListReports lists gate reports, newest first.
func (s *GateService) ListReports(ctx context.Context, tenantID, gateID string, limit int) (*models.GateReportListResponse, error) {
	query := s.client.GateReport.Query()
	if tenantID != "" {
		query = query.Where(gatereport.TenantIDEQ(tenantID))
	}
	if gateID != "" {
		query = query.Where(gatereport.GateEQ(gateID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count gate reports: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	reports, err := query.
		Limit(limit).
		Order(ent.Desc(gatereport.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gate reports: %w", err)
	}

	return &models.GateReportListResponse{Reports: reports, TotalCount: totalCount}, nil
}
