package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/timelineevent"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// TimelineService manages the user-facing run timeline.
type TimelineService struct {
	client *ent.Client
}

// NewTimelineService creates a new TimelineService.
func NewTimelineService(client *ent.Client) *TimelineService {
	return &TimelineService{client: client}
}

// CreateTimelineEvent creates a new timeline event in the streaming state.
func (s *TimelineService) CreateTimelineEvent(httpCtx context.Context, req models.CreateTimelineEventRequest) (*ent.TimelineEvent, error) {
	if req.RunID == "" {
		return nil, NewValidationError("RunID", "required")
	}
	if req.StepRunID == "" {
		return nil, NewValidationError("StepRunID", "required")
	}
	if req.ExecutionID == "" {
		return nil, NewValidationError("ExecutionID", "required")
	}
	if req.SequenceNumber <= 0 {
		return nil, NewValidationError("SequenceNumber", "must be positive")
	}
	if req.EventType == "" {
		return nil, NewValidationError("EventType", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.TimelineEvent.Create().
		SetID(uuid.New().String()).
		SetRunID(req.RunID).
		SetStepRunID(req.StepRunID).
		SetExecutionID(req.ExecutionID).
		SetSequenceNumber(req.SequenceNumber).
		SetEventType(timelineevent.EventType(req.EventType)).
		SetStatus(timelineevent.StatusStreaming).
		SetContent(req.Content).
		SetCreatedAt(time.Now())

	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	event, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}
	return event, nil
}

// UpdateStreamingContent replaces a streaming event's accumulated content.
func (s *TimelineService) UpdateStreamingContent(ctx context.Context, eventID string, req models.UpdateTimelineEventRequest) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TimelineEvent.UpdateOneID(eventID).
		SetContent(req.Content).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update timeline event: %w", err)
	}
	return nil
}

// CompleteTimelineEvent finalizes a streaming event with its full content
// and optional debug links.
func (s *TimelineService) CompleteTimelineEvent(ctx context.Context, eventID string, req models.CompleteTimelineEventRequest) (*ent.TimelineEvent, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TimelineEvent.UpdateOneID(eventID).
		SetStatus(timelineevent.StatusCompleted).
		SetContent(req.Content)

	if req.LLMInteractionID != nil {
		update = update.SetLlmInteractionID(*req.LLMInteractionID)
	}
	if req.ToolInteractionID != nil {
		update = update.SetToolInteractionID(*req.ToolInteractionID)
	}

	event, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete timeline event: %w", err)
	}
	return event, nil
}

// FailTimelineEvent marks a streaming event failed without clearing its
// partial content.
func (s *TimelineService) FailTimelineEvent(ctx context.Context, eventID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TimelineEvent.UpdateOneID(eventID).
		SetStatus(timelineevent.StatusFailed).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail timeline event: %w", err)
	}
	return nil
}

// GetTimeline returns a run's timeline in sequence order.
func (s *TimelineService) GetTimeline(ctx context.Context, runID string) ([]*ent.TimelineEvent, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.RunIDEQ(runID)).
		Order(ent.Asc(timelineevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	return events, nil
}

// NextSequenceNumber allocates the next timeline position for a run.
func (s *TimelineService) NextSequenceNumber(ctx context.Context, runID string) (int, error) {
	last, err := s.client.TimelineEvent.Query().
		Where(timelineevent.RunIDEQ(runID)).
		Order(ent.Desc(timelineevent.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to query last timeline event: %w", err)
	}
	return last.SequenceNumber + 1, nil
}
