package compare

import (
	"context"
	"sort"

	"github.com/tarsy-labs/agentcore/pkg/contracts"
)

// RRFDefaultK is the standard Reciprocal Rank Fusion constant (Cormack
// et al., 2009), matching default k=60.
const RRFDefaultK = 60

// Defaults for the vector/BM25 fusion weights.
const (
	DefaultVectorWeight = 0.7
	DefaultBM25Weight   = 0.3
)

// HybridResult is one fused result from hybrid search.
type HybridResult struct {
	Text        string
	Score       float64
	VectorScore float64
	BM25Score   float64
	VectorRank  int
	BM25Rank    int
	Metadata    map[string]any
}

// HybridSearcher fuses brute-force cosine vector search with BM25
// keyword search via Reciprocal Rank Fusion.
type HybridSearcher struct {
	vectors      *VectorIndex
	bm25         *BM25Index
	embedder     contracts.EmbeddingProvider
	vectorWeight float64
	bm25Weight   float64
	rrfK         int
}

// NewHybridSearcher creates a searcher with the default weights
// (w_v=0.7, w_b=0.3) and k=60.
func NewHybridSearcher(vectors *VectorIndex, bm25 *BM25Index, embedder contracts.EmbeddingProvider) *HybridSearcher {
	return &HybridSearcher{
		vectors: vectors, bm25: bm25, embedder: embedder,
		vectorWeight: DefaultVectorWeight, bm25Weight: DefaultBM25Weight, rrfK: RRFDefaultK,
	}
}

// WithWeights overrides the fusion weights and RRF constant.
func (h *HybridSearcher) WithWeights(vectorWeight float64, rrfK int) *HybridSearcher {
	h.vectorWeight = vectorWeight
	h.bm25Weight = 1 - vectorWeight
	if rrfK > 0 {
		h.rrfK = rrfK
	}
	return h
}

// SearchOptions selects which underlying retrievers run.
type SearchOptions struct {
	VectorOnly bool
	BM25Only   bool
}

// Search runs hybrid retrieval for query and returns the top-k fused
// results.
func (h *HybridSearcher) Search(ctx context.Context, query string, topK int, opts SearchOptions) ([]HybridResult, error) {
	fetchK := topK * 3
	if fetchK <= 0 {
		fetchK = topK
	}

	var vectorResults, bm25Results []Result
	if !opts.BM25Only {
		embedding, err := h.embedder.Embed(ctx, query)
		if err != nil {
			return nil, err
		}
		vectorResults = h.vectors.Search(embedding, fetchK)
	}
	if !opts.VectorOnly && h.bm25.Size() > 0 {
		bm25Results = h.bm25.Search(query, fetchK)
	}

	switch {
	case opts.VectorOnly || h.bm25.Size() == 0:
		out := make([]HybridResult, 0, len(vectorResults))
		for i, r := range vectorResults {
			out = append(out, HybridResult{Text: r.Text, Score: r.Score, VectorScore: r.Score, VectorRank: i + 1, Metadata: r.Metadata})
		}
		return capResults(out, topK), nil
	case opts.BM25Only:
		out := make([]HybridResult, 0, len(bm25Results))
		for i, r := range bm25Results {
			out = append(out, HybridResult{Text: r.Text, Score: r.Score, BM25Score: r.Score, BM25Rank: i + 1, Metadata: r.Metadata})
		}
		return capResults(out, topK), nil
	default:
		return capResults(h.fuse(vectorResults, bm25Results), topK), nil
	}
}

func capResults(results []HybridResult, topK int) []HybridResult {
	if topK > 0 && len(results) > topK {
		return results[:topK]
	}
	return results
}

// fuse merges two ranked lists by weighted RRF, deduplicating on text
// content ("score = w_v . 1/(k+rank_v) + w_b . 1/(k+rank_b)").
func (h *HybridSearcher) fuse(vectorResults, bm25Results []Result) []HybridResult {
	merged := make(map[string]*HybridResult)

	for rank, r := range vectorResults {
		hr, ok := merged[r.Text]
		if !ok {
			hr = &HybridResult{Text: r.Text, Metadata: r.Metadata}
			merged[r.Text] = hr
		}
		hr.VectorRank = rank + 1
		hr.VectorScore = r.Score
	}
	for rank, r := range bm25Results {
		hr, ok := merged[r.Text]
		if !ok {
			hr = &HybridResult{Text: r.Text, Metadata: r.Metadata}
			merged[r.Text] = hr
		}
		hr.BM25Rank = rank + 1
		hr.BM25Score = r.Score
	}

	out := make([]HybridResult, 0, len(merged))
	for _, hr := range merged {
		var vRRF, bRRF float64
		if hr.VectorRank > 0 {
			vRRF = 1.0 / float64(h.rrfK+hr.VectorRank)
		}
		if hr.BM25Rank > 0 {
			bRRF = 1.0 / float64(h.rrfK+hr.BM25Rank)
		}
		hr.Score = h.vectorWeight*vRRF + h.bm25Weight*bRRF
		out = append(out, *hr)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
