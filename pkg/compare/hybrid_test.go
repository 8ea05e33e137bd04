package compare

import (
	"math"
	"testing"
)

func TestRRFFusionMatchesWorkedExample(t *testing.T) {
	h := &HybridSearcher{vectorWeight: 0.7, bm25Weight: 0.3, rrfK: 60}

	vectorResults := []Result{{Text: "doc1"}, {Text: "doc2"}, {Text: "doc3"}}
	bm25Results := []Result{{Text: "doc2"}, {Text: "doc3"}, {Text: "doc4"}}

	fused := h.fuse(vectorResults, bm25Results)
	if len(fused) != 4 {
		t.Fatalf("expected 4 unique fused results, got %d", len(fused))
	}

	order := make([]string, len(fused))
	for i, r := range fused {
		order[i] = r.Text
	}
	want := []string{"doc2", "doc3", "doc1", "doc4"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected ranking %v, got %v", want, order)
		}
	}

	byText := make(map[string]HybridResult, len(fused))
	for _, r := range fused {
		byText[r.Text] = r
	}
	if s := byText["doc2"].Score; math.Abs(s-0.01621) > 0.0001 {
		t.Fatalf("doc2 score expected ~0.01621, got %.5f", s)
	}
	if s := byText["doc1"].Score; math.Abs(s-0.01148) > 0.0001 {
		t.Fatalf("doc1 score expected ~0.01148, got %.5f", s)
	}
	if s := byText["doc3"].Score; math.Abs(s-0.01595) > 0.0001 {
		t.Fatalf("doc3 score expected ~0.01595, got %.5f", s)
	}
}

func TestBM25RanksExactMatchHigher(t *testing.T) {
	idx := NewBM25Index()
	idx.AddDocument("the quick brown fox jumps over the lazy dog", nil)
	idx.AddDocument("completely unrelated content about gardening", nil)
	idx.AddDocument("a fox and a dog became unlikely friends", nil)

	results := idx.Search("fox dog", 3)
	if len(results) == 0 {
		t.Fatalf("expected at least one match")
	}
	if results[0].Score <= 0 {
		t.Fatalf("top result should have positive score")
	}
}

func TestVectorIndexCosineOrdering(t *testing.T) {
	v := NewVectorIndex()
	v.Add("same", []float64{1, 0, 0}, nil)
	v.Add("orthogonal", []float64{0, 1, 0}, nil)
	v.Add("opposite", []float64{-1, 0, 0}, nil)

	results := v.Search([]float64{1, 0, 0}, 3)
	if results[0].Text != "same" {
		t.Fatalf("expected identical vector to rank first, got %s", results[0].Text)
	}
	if results[len(results)-1].Text != "opposite" {
		t.Fatalf("expected opposite vector to rank last, got %s", results[len(results)-1].Text)
	}
}
