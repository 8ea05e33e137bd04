package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/event"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// EventService manages the pub/sub event rows backing WebSocket catchup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent creates a new event row.
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Event.Create().
		SetChannel(req.Channel).
		SetPayload(req.Payload).
		SetCreatedAt(time.Now())
	if req.RunID != "" {
		builder.SetRunID(req.RunID)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return evt, nil
}

// GetEventsSince retrieves events on a channel after the given ID, capped
// at limit when limit > 0.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupRunEvents removes all events for a run.
func (s *EventService) CleanupRunEvents(ctx context.Context, runID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.RunIDEQ(runID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup run events: %w", err)
	}
	return count, nil
}

// CleanupOrphanedEvents removes events older than the TTL. Per-run cleanup
// handles the normal case; this is a safety net.
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}
	return count, nil
}
