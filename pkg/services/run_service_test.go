package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/ent/workflowrun"
	"github.com/tarsy-labs/agentcore/pkg/models"
	testdb "github.com/tarsy-labs/agentcore/test/database"
)

func TestSubmitRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	run, err := svc.SubmitRun(ctx, models.SubmitRunRequest{
		RunID:        "run-1",
		TenantID:     "tenant-a",
		WorkflowName: "deploy-check",
		Inputs:       map[string]any{"target": "staging"},
		Author:       "dev@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, workflowrun.StatusPending, run.Status)
	assert.Equal(t, "1.0.0", run.WorkflowVersion)
	assert.Equal(t, workflowrun.TriggerManual, run.Trigger)
}

func TestSubmitRunValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	_, err := svc.SubmitRun(ctx, models.SubmitRunRequest{
		TenantID:     "tenant-a",
		WorkflowName: "deploy-check",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.SubmitRun(ctx, models.SubmitRunRequest{
		RunID:        "run-x",
		TenantID:     "tenant-a",
		WorkflowName: "no-such-workflow",
	})
	assert.True(t, IsValidationError(err))
}

func TestSubmitRunDuplicate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	req := models.SubmitRunRequest{
		RunID:        "run-dup",
		TenantID:     "tenant-a",
		WorkflowName: "test-workflow",
	}
	_, err := svc.SubmitRun(ctx, req)
	require.NoError(t, err)

	_, err = svc.SubmitRun(ctx, req)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestClaimNextPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	// Nothing pending yet.
	claimed, err := svc.ClaimNextPendingRun(ctx, "pod-1")
	require.NoError(t, err)
	assert.Nil(t, claimed)

	_, err = svc.SubmitRun(ctx, models.SubmitRunRequest{
		RunID:        "run-old",
		TenantID:     "tenant-a",
		WorkflowName: "test-workflow",
	})
	require.NoError(t, err)

	claimed, err = svc.ClaimNextPendingRun(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "run-old", claimed.ID)
	assert.Equal(t, workflowrun.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)

	// Already claimed — nothing left.
	again, err := svc.ClaimNextPendingRun(ctx, "pod-2")
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestUpdateRunStatusTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	_, err := svc.SubmitRun(ctx, models.SubmitRunRequest{
		RunID:        "run-term",
		TenantID:     "tenant-a",
		WorkflowName: "test-workflow",
	})
	require.NoError(t, err)

	_, err = svc.ClaimNextPendingRun(ctx, "pod-1")
	require.NoError(t, err)

	err = svc.UpdateRunStatus(ctx, "run-term", workflowrun.StatusCompleted, "")
	require.NoError(t, err)

	run, err := svc.GetRun(ctx, "run-term", false)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusCompleted, run.Status)
	require.NotNil(t, run.CompletedAt)
	require.NotNil(t, run.DurationMs)
	assert.GreaterOrEqual(t, *run.DurationMs, 0)
}

func TestListRunsFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	for _, id := range []string{"run-a", "run-b"} {
		_, err := svc.SubmitRun(ctx, models.SubmitRunRequest{
			RunID:        id,
			TenantID:     "tenant-a",
			WorkflowName: "test-workflow",
		})
		require.NoError(t, err)
	}
	_, err := svc.SubmitRun(ctx, models.SubmitRunRequest{
		RunID:        "run-c",
		TenantID:     "tenant-b",
		WorkflowName: "deploy-check",
	})
	require.NoError(t, err)

	resp, err := svc.ListRuns(ctx, models.RunFilters{TenantID: "tenant-a"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)

	resp, err = svc.ListRuns(ctx, models.RunFilters{WorkflowName: "deploy-check"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "run-c", resp.Runs[0].ID)
}

func TestFindOrphanedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	_, err := svc.SubmitRun(ctx, models.SubmitRunRequest{
		RunID:        "run-orphan",
		TenantID:     "tenant-a",
		WorkflowName: "test-workflow",
	})
	require.NoError(t, err)
	_, err = svc.ClaimNextPendingRun(ctx, "pod-dead")
	require.NoError(t, err)

	// Backdate last_interaction_at past the orphan threshold.
	err = client.WorkflowRun.UpdateOneID("run-orphan").
		SetLastInteractionAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	orphans, err := svc.FindOrphanedRuns(ctx, time.Hour)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "run-orphan", orphans[0].ID)
}

func TestSoftDeleteOldRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestRunService(t, client.Client)
	ctx := context.Background()

	_, err := svc.SubmitRun(ctx, models.SubmitRunRequest{
		RunID:        "run-ancient",
		TenantID:     "tenant-a",
		WorkflowName: "test-workflow",
	})
	require.NoError(t, err)

	err = client.WorkflowRun.UpdateOneID("run-ancient").
		SetCompletedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	count, err := svc.SoftDeleteOldRuns(ctx, 365)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	resp, err := svc.ListRuns(ctx, models.RunFilters{TenantID: "tenant-a"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalCount)

	require.NoError(t, svc.RestoreRun(ctx, "run-ancient"))
	resp, err = svc.ListRuns(ctx, models.RunFilters{TenantID: "tenant-a"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
}
