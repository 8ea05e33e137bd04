package models

import "github.com/tarsy-labs/agentcore/ent"

// CreateEventRequest contains fields for creating a pub/sub event.
type CreateEventRequest struct {
	RunID   string         `json:"run_id"`
	Channel string         `json:"channel"`
	Payload map[string]any `json:"payload"`
}

// EventResponse wraps an Event.
type EventResponse struct {
	*ent.Event
}

// EventsResponse contains a list of events since a given ID.
type EventsResponse struct {
	Events []*ent.Event `json:"events"`
}
