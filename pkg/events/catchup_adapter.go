package events

import (
	"context"

	"github.com/tarsy-labs/agentcore/ent"
)

// eventQuerier is the one query method the catchup path needs from the
// service layer. Implemented by *services.EventService.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter narrows an eventQuerier to the CatchupQuerier shape
// the ConnectionManager consumes, converting ent rows to CatchupEvents so
// the connection layer never sees the persistence types.
type EventServiceAdapter struct {
	querier eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{querier: es}
}

// GetCatchupEvents returns up to limit events after sinceID on a channel.
// A non-positive limit falls back to the manager's catchup cap rather
// than an unbounded query.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	if limit <= 0 {
		limit = catchupLimit
	}

	rows, err := a.querier.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, CatchupEvent{ID: row.ID, Payload: row.Payload})
	}
	return out, nil
}
