package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyByteBudget is how much of PostgreSQL's 8000-byte NOTIFY limit a
// payload may use; anything larger is collapsed to a routing envelope
// that tells the client to fetch the full event from the database.
const notifyByteBudget = 7900

// durability says whether a published event is stored for catchup or is
// NOTIFY-only.
type durability bool

const (
	persistent durability = true
	transient  durability = false
)

// EventPublisher publishes the engine's lifecycle events for WebSocket
// delivery. Persistent events (timeline entries, run/step status,
// interaction markers) are inserted into the events table and broadcast
// via NOTIFY in one transaction; transient events (stream chunks,
// progress ticks) are NOTIFY-only and vanish on disconnect.
//
// Every public method is a thin typed wrapper around publish(); the
// payload structs live in payloads.go.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishTimelineCreated announces a new timeline event (streaming or
// completed) on the run's channel.
func (p *EventPublisher) PublishTimelineCreated(ctx context.Context, runID string, payload TimelineCreatedPayload) error {
	return p.publish(ctx, runID, RunChannel(runID), persistent, payload)
}

// PublishTimelineCompleted announces a streaming timeline event reaching
// a terminal status.
func (p *EventPublisher) PublishTimelineCompleted(ctx context.Context, runID string, payload TimelineCompletedPayload) error {
	return p.publish(ctx, runID, RunChannel(runID), persistent, payload)
}

// PublishStreamChunk broadcasts one streaming delta. High-frequency and
// ephemeral: never persisted, lost on disconnect.
func (p *EventPublisher) PublishStreamChunk(ctx context.Context, runID string, payload StreamChunkPayload) error {
	return p.publish(ctx, runID, RunChannel(runID), transient, payload)
}

// PublishStepStatus announces a workflow step's lifecycle transition.
func (p *EventPublisher) PublishStepStatus(ctx context.Context, runID string, payload StepStatusPayload) error {
	return p.publish(ctx, runID, RunChannel(runID), persistent, payload)
}

// PublishRunStatus announces a run's lifecycle transition. The durable
// copy goes to the run channel; a transient copy also goes to the global
// runs channel for the run-list page. Both sends are attempted even if
// the first fails; the first error wins.
func (p *EventPublisher) PublishRunStatus(ctx context.Context, runID string, payload RunStatusPayload) error {
	firstErr := p.publish(ctx, runID, RunChannel(runID), persistent, payload)
	if firstErr != nil {
		slog.Warn("Failed to publish run status to run channel",
			"run_id", runID, "status", payload.Status, "error", firstErr)
	}
	if err := p.publish(ctx, runID, GlobalRunsChannel, transient, payload); err != nil {
		slog.Warn("Failed to publish run status to global channel",
			"run_id", runID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishInteractionCreated announces that an LLM or tool interaction
// detail row was persisted, so open debug views can refresh.
func (p *EventPublisher) PublishInteractionCreated(ctx context.Context, runID string, payload InteractionCreatedPayload) error {
	return p.publish(ctx, runID, RunChannel(runID), persistent, payload)
}

// PublishRunProgress broadcasts a transient progress tick to the global
// runs channel for the active-runs panel.
func (p *EventPublisher) PublishRunProgress(ctx context.Context, payload RunProgressPayload) error {
	return p.publish(ctx, payload.RunID, GlobalRunsChannel, transient, payload)
}

// PublishExecutionProgress broadcasts a transient per-agent progress tick
// on the run channel.
func (p *EventPublisher) PublishExecutionProgress(ctx context.Context, runID string, payload ExecutionProgressPayload) error {
	return p.publish(ctx, runID, RunChannel(runID), transient, payload)
}

// publish marshals one payload and routes it by durability.
func (p *EventPublisher) publish(ctx context.Context, runID, channel string, durable durability, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	if durable {
		return p.persistAndNotify(ctx, runID, channel, payloadJSON)
	}
	return p.notifyOnly(ctx, channel, payloadJSON)
}

// persistAndNotify inserts the event row and fires NOTIFY inside one
// transaction — pg_notify is transactional, so the broadcast is held
// until COMMIT and either both happen or neither does.
func (p *EventPublisher) persistAndNotify(ctx context.Context, runID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (run_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		runID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// The NOTIFY copy carries db_event_id so reconnecting clients know
	// where their catchup cursor stands.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without touching the events table.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := fitNotifyBudget(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery, then applies the size budget.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to decode payload for enrichment: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return fitNotifyBudget(string(enriched))
}

// fitNotifyBudget returns the payload unchanged when it fits PostgreSQL's
// NOTIFY limit, otherwise a minimal routing envelope: type, event_id,
// run_id, db_event_id, and truncated=true. The client fetches the full
// event from the database when it sees the flag.
func fitNotifyBudget(payloadStr string) (string, error) {
	if len(payloadStr) <= notifyByteBudget {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		EventID   string `json:"event_id"`
		RunID     string `json:"run_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	envelope := map[string]any{
		"type":      routing.Type,
		"event_id":  routing.EventID,
		"run_id":    routing.RunID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		envelope["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncation envelope: %w", err)
	}
	return string(out), nil
}
