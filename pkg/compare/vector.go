package compare

import (
	"math"
	"sort"
	"sync"
)

// VectorEntry is one embedded document in the brute-force vector index.
type VectorEntry struct {
	Text      string
	Vector    []float64
	Metadata  map[string]any
}

// VectorIndex is a brute-force cosine-similarity index — the only vector
// index implementation the core ships. Any
// production-grade ANN index plugs in behind contracts.Searchable instead.
type VectorIndex struct {
	mu      sync.Mutex
	entries []VectorEntry
}

// NewVectorIndex creates an empty index.
func NewVectorIndex() *VectorIndex {
	return &VectorIndex{}
}

// Add indexes one embedded document.
func (v *VectorIndex) Add(text string, vector []float64, metadata map[string]any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = append(v.entries, VectorEntry{Text: text, Vector: vector, Metadata: metadata})
}

// Size returns the number of indexed vectors.
func (v *VectorIndex) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.entries)
}

// Search scores every entry by cosine similarity against query and
// returns the top-k, highest similarity first.
func (v *VectorIndex) Search(query []float64, topK int) []Result {
	v.mu.Lock()
	entries := make([]VectorEntry, len(v.entries))
	copy(entries, v.entries)
	v.mu.Unlock()

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, 0, len(entries))
	for i, e := range entries {
		scores = append(scores, scored{i, cosineSimilarity(query, e.Vector)})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if topK > 0 && len(scores) > topK {
		scores = scores[:topK]
	}

	out := make([]Result, len(scores))
	for i, s := range scores {
		out[i] = Result{Text: entries[s.idx].Text, Score: s.score, Metadata: entries[s.idx].Metadata, DocIndex: s.idx}
	}
	return out
}

func cosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
