package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/comparativesample"
	"github.com/tarsy-labs/agentcore/pkg/compare"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// SampleService persists comparative samples and rebuilds the in-memory
// population tracker from them on startup.
type SampleService struct {
	client *ent.Client
}

// NewSampleService creates a new SampleService.
func NewSampleService(client *ent.Client) *SampleService {
	return &SampleService{client: client}
}

// RecordSample persists one observed metric value for an agent.
func (s *SampleService) RecordSample(httpCtx context.Context, req models.RecordSampleRequest) (*ent.ComparativeSample, error) {
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.Metric == "" {
		return nil, NewValidationError("metric", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sample, err := s.client.ComparativeSample.Create().
		SetID(uuid.New().String()).
		SetTenantID(req.TenantID).
		SetAgentName(req.AgentName).
		SetMetric(req.Metric).
		SetValue(req.Value).
		SetTaskID(req.TaskID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record sample: %w", err)
	}
	return sample, nil
}

// LoadPopulation rebuilds a population tracker from all persisted samples,
// oldest first so in-memory ordering matches insertion order.
func (s *SampleService) LoadPopulation(ctx context.Context, tenantID string) (*compare.Population, error) {
	query := s.client.ComparativeSample.Query()
	if tenantID != "" {
		query = query.Where(comparativesample.TenantIDEQ(tenantID))
	}

	samples, err := query.
		Order(ent.Asc(comparativesample.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}

	pop := compare.NewPopulation()
	for _, sm := range samples {
		pop.Add(sm.AgentName, sm.Metric, sm.Value)
	}
	return pop, nil
}
