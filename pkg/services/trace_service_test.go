package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/pkg/models"
	"github.com/tarsy-labs/agentcore/pkg/trace"
	testdb "github.com/tarsy-labs/agentcore/test/database"
)

func seedRun(t *testing.T, svc *RunService, runID string) {
	t.Helper()
	_, err := svc.SubmitRun(context.Background(), models.SubmitRunRequest{
		RunID:        runID,
		TenantID:     "tenant-a",
		WorkflowName: "test-workflow",
	})
	require.NoError(t, err)
}

func TestPersistTraceIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	runSvc := setupTestRunService(t, client.Client)
	svc := NewTraceService(client.Client)
	ctx := context.Background()

	seedRun(t, runSvc, "run-t1")

	started := time.Now().Add(-3 * time.Second)
	completed := time.Now()
	req := models.PersistTraceRequest{
		TraceID:   "trace-1",
		TenantID:  "tenant-a",
		RunID:     "run-t1",
		AgentID:   "implementer-1",
		AgentRole: "implementer",
		Model:     "gpt-4o",
		Status:    "completed",
		StartedAt: started,
		CompletedAt: completed,
		Steps: []map[string]any{
			{"step_id": "s1", "actions": []any{}},
		},
	}

	record, err := svc.PersistTrace(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "trace-1", record.ID)
	require.NotNil(t, record.DurationMs)
	assert.InDelta(t, completed.Sub(started).Milliseconds(), int64(*record.DurationMs), 5)

	// Second flush of the same trace is a no-op returning the stored row.
	again, err := svc.PersistTrace(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, record.ID, again.ID)

	resp, err := svc.ListTraces(ctx, models.TraceFilters{TenantID: "tenant-a"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestRecordFailureAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	runSvc := setupTestRunService(t, client.Client)
	svc := NewTraceService(client.Client)
	ctx := context.Background()

	seedRun(t, runSvc, "run-t2")

	_, err := svc.PersistTrace(ctx, models.PersistTraceRequest{
		TraceID:         "trace-2",
		TenantID:        "tenant-a",
		RunID:           "run-t2",
		AgentID:         "qa-1",
		AgentRole:       "qa",
		Model:           "claude-sonnet",
		Status:          "failed",
		FailureCode:     trace.SubcodeToolLoopGovernanceDenied,
		FailureCategory: string(trace.CategorySecurity),
		StartedAt:       time.Now().Add(-time.Second),
		CompletedAt:     time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.RecordFailure(ctx, "trace-2", "tenant-a", trace.FailureRecord{
		Category:  trace.CategorySecurity,
		Severity:  trace.SeverityHigh,
		Subcode:   trace.SubcodeToolLoopGovernanceDenied,
		Message:   "tool blocked by governance",
		Retryable: false,
	})
	require.NoError(t, err)

	failures, err := svc.ListFailures(ctx, models.FailureFilters{Category: "security"})
	require.NoError(t, err)
	require.Equal(t, 1, failures.TotalCount)
	assert.Equal(t, trace.SubcodeToolLoopGovernanceDenied, failures.Failures[0].Subcode)

	// Trace list filters by status.
	traces, err := svc.ListTraces(ctx, models.TraceFilters{Status: "failed"})
	require.NoError(t, err)
	require.Equal(t, 1, traces.TotalCount)
	assert.Equal(t, "trace-2", traces.Traces[0].ID)
}
