// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes old completed runs
//   - Removes orphaned Event rows past their TTL
//   - Expires autonomy budgets past their expiry timestamp
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	runService    *services.RunService
	eventService  *services.EventService
	budgetService *services.BudgetService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	runService *services.RunService,
	eventService *services.EventService,
	budgetService *services.BudgetService,
) *Service {
	return &Service{
		config:        cfg,
		runService:    runService,
		eventService:  eventService,
		budgetService: budgetService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldRuns(ctx)
	s.cleanupOrphanedEvents(ctx)
	s.expireBudgets(ctx)
}

func (s *Service) softDeleteOldRuns(_ context.Context) {
	count, err := s.runService.SoftDeleteOldRuns(context.Background(), s.config.RunRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete runs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old runs", "count", count)
	}
}

func (s *Service) cleanupOrphanedEvents(_ context.Context) {
	count, err := s.eventService.CleanupOrphanedEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up orphaned events", "count", count)
	}
}

func (s *Service) expireBudgets(_ context.Context) {
	count, err := s.budgetService.ExpireOverdueBudgets(context.Background())
	if err != nil {
		slog.Error("Retention: budget expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired overdue budgets", "count", count)
	}
}
