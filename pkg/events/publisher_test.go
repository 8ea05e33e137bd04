package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	payload, _ := json.Marshal(TimelineCreatedPayload{
		Type:    EventTypeTimelineCreated,
		RunID:   "run-1",
		EventID: "evt-123",
		Content: "short content",
	})

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)
	assert.Contains(t, result, `"db_event_id":42`)
	assert.Contains(t, result, "evt-123")
	assert.NotContains(t, result, `"truncated"`)
}

func TestInjectDBEventIDTruncatesLargePayloads(t *testing.T) {
	longContent := make([]byte, 8000)
	for i := range longContent {
		longContent[i] = 'x'
	}
	payload, _ := json.Marshal(StreamChunkPayload{
		Type:    EventTypeStreamChunk,
		EventID: "evt-789",
		Delta:   string(longContent),
	})

	result, err := injectDBEventIDAndTruncate(payload, 99)
	require.NoError(t, err)
	assert.Contains(t, result, `"truncated":true`)
	assert.Contains(t, result, `"db_event_id":99`)
	assert.Less(t, len(result), len(payload), "oversized payload must shrink")
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestStepStatusPayloadOmitsEmptyStepRunID(t *testing.T) {
	// StepRunID can be empty on "started" events (row not yet created).
	payload := StepStatusPayload{
		Type:      EventTypeStepStatus,
		RunID:     "run-123",
		StepID:    "verify",
		Status:    StepStatusStarted,
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "step_run_id")
}
