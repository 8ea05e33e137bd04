package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how runs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of concurrent runs being
	// processed across ALL replicas/pods. Enforced by database COUNT(*).
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// OrphanTimeout is how long an in-progress run may go without a
	// heartbeat before the orphan sweep reclaims it.
	OrphanTimeout time.Duration `yaml:"orphan_timeout"`

	// OrphanSweepInterval is how often the orphan sweep runs.
	OrphanSweepInterval time.Duration `yaml:"orphan_sweep_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:         4,
		MaxConcurrentRuns:   16,
		PollInterval:        2 * time.Second,
		OrphanTimeout:       10 * time.Minute,
		OrphanSweepInterval: time.Minute,
	}
}
