package queue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/workflowrun"
	"github.com/tarsy-labs/agentcore/pkg/config"
	testdb "github.com/tarsy-labs/agentcore/test/database"
)

// stubExecutor completes every run immediately.
type stubExecutor struct {
	executed atomic.Int32
	status   workflowrun.Status
}

func (s *stubExecutor) Execute(_ context.Context, _ *ent.WorkflowRun) *ExecutionResult {
	s.executed.Add(1)
	return &ExecutionResult{
		Status:  s.status,
		Outputs: map[string]any{"done": true},
	}
}

func seedPendingRun(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.WorkflowRun.Create().
		SetID(id).
		SetTenantID("tenant-a").
		SetWorkflowName("test-workflow").
		SetStatus(workflowrun.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:         1,
		MaxConcurrentRuns:   4,
		PollInterval:        50 * time.Millisecond,
		OrphanTimeout:       time.Minute,
		OrphanSweepInterval: time.Hour,
	}
}

func TestWorkerProcessesPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	executor := &stubExecutor{status: workflowrun.StatusCompleted}

	pool := NewWorkerPool("pod-test", client.Client, testQueueConfig(), executor)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	seedPendingRun(t, client.Client, "run-q1")

	require.Eventually(t, func() bool {
		run, err := client.WorkflowRun.Get(context.Background(), "run-q1")
		return err == nil && run.Status == workflowrun.StatusCompleted
	}, 10*time.Second, 100*time.Millisecond)

	run, err := client.WorkflowRun.Get(context.Background(), "run-q1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), executor.executed.Load())
	require.NotNil(t, run.PodID)
	assert.Equal(t, "pod-test", *run.PodID)
	assert.NotNil(t, run.StartedAt)
	assert.NotNil(t, run.CompletedAt)
	assert.Equal(t, map[string]any{"done": true}, run.Outputs)
}

func TestWorkerWritesFailureState(t *testing.T) {
	client := testdb.NewTestClient(t)
	executor := &stubExecutor{status: workflowrun.StatusFailed}

	pool := NewWorkerPool("pod-test", client.Client, testQueueConfig(), executor)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	seedPendingRun(t, client.Client, "run-q2")

	require.Eventually(t, func() bool {
		run, err := client.WorkflowRun.Get(context.Background(), "run-q2")
		return err == nil && run.Status == workflowrun.StatusFailed
	}, 10*time.Second, 100*time.Millisecond)
}

func TestOrphanSweepReclaimsStaleRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	executor := &stubExecutor{status: workflowrun.StatusCompleted}
	cfg := testQueueConfig()
	cfg.WorkerCount = 0 // no workers — sweep only

	pool := NewWorkerPool("pod-test", client.Client, cfg, executor)
	ctx := context.Background()

	// A run claimed by a dead pod, heartbeat long past the threshold.
	_, err := client.WorkflowRun.Create().
		SetID("run-stale").
		SetTenantID("tenant-a").
		SetWorkflowName("test-workflow").
		SetStatus(workflowrun.StatusInProgress).
		SetPodID("pod-dead").
		SetStartedAt(time.Now().Add(-2 * time.Hour)).
		SetLastInteractionAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	run, err := client.WorkflowRun.Get(ctx, "run-stale")
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusTimedOut, run.Status)
	assert.NotNil(t, run.CompletedAt)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
}

func TestPoolHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	pool := NewWorkerPool("pod-health", client.Client, testQueueConfig(), &stubExecutor{status: workflowrun.StatusCompleted})

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-health", health.PodID)
	assert.Equal(t, 4, health.MaxConcurrent)
}
