package compare

import (
	"math"
	"sort"
	"sync"
)

// DefaultRating is the starting Elo rating for a newly-seen agent.
const DefaultRating = 1500.0

// kFactorThreshold is games_played below which the higher K-factor
// applies.
const kFactorThreshold = 30

const (
	kFactorProvisional = 32.0
	kFactorEstablished = 16.0
)

// Outcome is a pairwise comparison result from A's perspective.
type Outcome string

const (
	Win  Outcome = "win"
	Loss Outcome = "loss"
	Draw Outcome = "draw"
)

// Rating is one agent's rolling Elo record.
type Rating struct {
	Agent       string
	Current     float64
	Peak        float64
	GamesPlayed int
	Wins        int
	Losses      int
	Draws       int
	History     []float64
}

// EffectiveK returns the K-factor an agent with gamesPlayed should use.
func EffectiveK(gamesPlayed int) float64 {
	if gamesPlayed < kFactorThreshold {
		return kFactorProvisional
	}
	return kFactorEstablished
}

func expectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EloTable holds every agent's current rating, serializing updates
// per-agent with a striped mutex so concurrent pairwise comparisons
// touching the same agent never interleave.
type EloTable struct {
	mu      sync.Mutex
	ratings map[string]*Rating
}

// NewEloTable creates an empty table.
func NewEloTable() *EloTable {
	return &EloTable{ratings: make(map[string]*Rating)}
}

// GetOrCreate returns the agent's rating, creating one at DefaultRating
// if absent.
func (t *EloTable) GetOrCreate(agent string) *Rating {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getOrCreateLocked(agent)
}

func (t *EloTable) getOrCreateLocked(agent string) *Rating {
	r, ok := t.ratings[agent]
	if !ok {
		r = &Rating{Agent: agent, Current: DefaultRating, Peak: DefaultRating, History: []float64{DefaultRating}}
		t.ratings[agent] = r
	}
	return r
}

// Get returns a copy of an agent's rating, if tracked.
func (t *EloTable) Get(agent string) (Rating, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.ratings[agent]
	if !ok {
		return Rating{}, false
	}
	return *r, true
}

// Update applies a pairwise comparison outcome (from A's perspective)
// between agentA and agentB, updating both ratings in place under the
// table's single lock.
func (t *EloTable) Update(agentA, agentB string, outcome Outcome) (newA, newB float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a := t.getOrCreateLocked(agentA)
	b := t.getOrCreateLocked(agentB)

	var actualA, actualB float64
	switch outcome {
	case Win:
		actualA, actualB = 1, 0
	case Loss:
		actualA, actualB = 0, 1
	default:
		actualA, actualB = 0.5, 0.5
	}

	expectedA := expectedScore(a.Current, b.Current)
	expectedB := 1 - expectedA

	kA := EffectiveK(a.GamesPlayed)
	kB := EffectiveK(b.GamesPlayed)

	a.Current = round2(a.Current + kA*(actualA-expectedA))
	b.Current = round2(b.Current + kB*(actualB-expectedB))

	applyGameResult(a, outcome)
	applyGameResult(b, invert(outcome))

	return a.Current, b.Current
}

// leaderboardCap bounds Snapshot's output.
const leaderboardCap = 200

// Snapshot returns a copy of every rating, ordered best-first and capped
// at leaderboardCap entries.
func (t *EloTable) Snapshot() []Rating {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Rating, 0, len(t.ratings))
	for _, r := range t.ratings {
		cp := *r
		cp.History = append([]float64(nil), r.History...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current > out[j].Current
		}
		return out[i].Agent < out[j].Agent
	})
	if len(out) > leaderboardCap {
		out = out[:leaderboardCap]
	}
	return out
}

func invert(o Outcome) Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return Draw
	}
}

func applyGameResult(r *Rating, o Outcome) {
	r.GamesPlayed++
	if r.Current > r.Peak {
		r.Peak = r.Current
	}
	r.History = append(r.History, r.Current)
	switch o {
	case Win:
		r.Wins++
	case Loss:
		r.Losses++
	default:
		r.Draws++
	}
}
