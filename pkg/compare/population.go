// Package compare implements the comparative-evaluation core: per-agent
// population tracking, Elo rating, percentile ranking, pairwise
// statistical comparison, and RRF hybrid keyword+vector search.
package compare

import "sync"

// Population keeps per-metric, per-agent sample value lists. Appends are
// protected by a single lock; percentile and leaderboard computations
// snapshot the map before computing.
type Population struct {
	mu      sync.Mutex
	samples map[string]map[string][]float64 // metric -> agent -> values
}

// NewPopulation creates an empty tracker.
func NewPopulation() *Population {
	return &Population{samples: make(map[string]map[string][]float64)}
}

// Add records one sample for (agent, metric).
func (p *Population) Add(agent, metric string, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	byAgent, ok := p.samples[metric]
	if !ok {
		byAgent = make(map[string][]float64)
		p.samples[metric] = byAgent
	}
	byAgent[agent] = append(byAgent[agent], value)
}

// AddMany records multiple samples for (agent, metric) at once.
func (p *Population) AddMany(agent, metric string, values []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	byAgent, ok := p.samples[metric]
	if !ok {
		byAgent = make(map[string][]float64)
		p.samples[metric] = byAgent
	}
	byAgent[agent] = append(byAgent[agent], values...)
}

// AgentMean returns the mean of an agent's samples for a metric, and
// whether any samples exist.
func (p *Population) AgentMean(agent, metric string) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	vals, ok := p.samples[metric][agent]
	if !ok || len(vals) == 0 {
		return 0, false
	}
	return mean(vals), true
}

// PopulationMeans returns every tracked agent's mean for a metric.
func (p *Population) PopulationMeans(metric string) map[string]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	byAgent := p.samples[metric]
	out := make(map[string]float64, len(byAgent))
	for agent, vals := range byAgent {
		if len(vals) > 0 {
			out[agent] = mean(vals)
		}
	}
	return out
}

// AgentCount returns the number of distinct agents tracked for a metric.
func (p *Population) AgentCount(metric string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.samples[metric])
}

// AgentSampleCount returns how many samples an agent has for a metric.
func (p *Population) AgentSampleCount(agent, metric string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.samples[metric][agent])
}

// Samples returns a copy of an agent's raw samples for a metric, used by
// the comparator's significance test.
func (p *Population) Samples(agent, metric string) []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	vals := p.samples[metric][agent]
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

// MetricNames returns every metric name with at least one tracked sample.
func (p *Population) MetricNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.samples))
	for m := range p.samples {
		out = append(out, m)
	}
	return out
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func variance(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(vals)-1)
}
