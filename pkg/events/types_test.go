package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunChannel(t *testing.T) {
	tests := []struct {
		name  string
		runID string
		want  string
	}{
		{
			name:  "formats run channel correctly",
			runID: "abc-123",
			want:  "run:abc-123",
		},
		{
			name:  "handles UUID format",
			runID: "550e8400-e29b-41d4-a716-446655440000",
			want:  "run:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "handles empty string",
			runID: "",
			want:  "run:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunChannel(tt.runID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeTimelineCreated,
		EventTypeTimelineCompleted,
		EventTypeRunStatus,
		EventTypeStepStatus,
		EventTypeStreamChunk,
		EventTypeRunProgress,
		EventTypeExecutionProgress,
		EventTypeInteractionCreated,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestGlobalRunsChannel(t *testing.T) {
	assert.Equal(t, "runs", GlobalRunsChannel)
}
