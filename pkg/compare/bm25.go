package compare

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// stopWords is the fixed 56-word English stop list BM25 tokenization
// removes.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "had": true,
	"has": true, "have": true, "he": true, "her": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "just": true, "my": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "our": true, "she": true, "so": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "to": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"which": true, "who": true, "will": true, "with": true, "you": true,
}

var wordRE = regexp.MustCompile(`\w+`)

// Tokenize lowercases text and splits it into word-character tokens,
// removing the fixed stop list.
func Tokenize(text string) []string {
	raw := wordRE.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if !stopWords[t] {
			out = append(out, t)
		}
	}
	return out
}

const (
	defaultK1 = 1.2
	defaultB  = 0.75
)

type bm25Doc struct {
	text     string
	metadata map[string]any
	tokens   []string
	length   int
}

// BM25Index is an in-memory Okapi BM25 index. Corpus statistics (document
// frequency, total length, running average) are maintained incrementally
// so a single insert is O(distinct terms in that document).
type BM25Index struct {
	mu   sync.Mutex
	k1   float64
	b    float64
	docs []bm25Doc

	docFreq map[string]int
	totalDL int
	avgDL   float64
}

// NewBM25Index creates an index with the default k1=1.2, b=0.75.
func NewBM25Index() *BM25Index {
	return &BM25Index{k1: defaultK1, b: defaultB, docFreq: make(map[string]int)}
}

// AddDocument indexes one document and returns its index.
func (idx *BM25Index) AddDocument(content string, metadata map[string]any) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.addLocked(content, metadata)
}

func (idx *BM25Index) addLocked(content string, metadata map[string]any) int {
	tokens := Tokenize(content)
	doc := bm25Doc{text: content, metadata: metadata, tokens: tokens, length: len(tokens)}
	docIdx := len(idx.docs)
	idx.docs = append(idx.docs, doc)
	idx.totalDL += doc.length

	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if !seen[t] {
			idx.docFreq[t]++
			seen[t] = true
		}
	}
	idx.avgDL = float64(idx.totalDL) / float64(len(idx.docs))
	return docIdx
}

// AddDocuments bulk-adds documents, deferring avgDL recomputation until
// the whole batch is indexed.
func (idx *BM25Index) AddDocuments(contents []string, metadatas []map[string]any) []int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	out := make([]int, len(contents))
	for i, c := range contents {
		var md map[string]any
		if i < len(metadatas) {
			md = metadatas[i]
		}
		out[i] = idx.addLocked(c, md)
	}
	return out
}

// Size returns the number of indexed documents.
func (idx *BM25Index) Size() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.docs)
}

// Result is a single ranked BM25 search hit.
type Result struct {
	Text     string
	Score    float64
	Metadata map[string]any
	DocIndex int
}

// Search scores every document against query and returns the top-k
// results, highest score first.
func (idx *BM25Index) Search(query string, topK int) []Result {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if len(idx.docs) == 0 {
		return nil
	}
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	type scored struct {
		idx   int
		score float64
	}
	var scores []scored
	for i := range idx.docs {
		s := idx.scoreDocument(queryTokens, i)
		if s > 0 {
			scores = append(scores, scored{i, s})
		}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if topK > 0 && len(scores) > topK {
		scores = scores[:topK]
	}

	out := make([]Result, len(scores))
	for i, s := range scores {
		out[i] = Result{Text: idx.docs[s.idx].text, Score: s.score, Metadata: idx.docs[s.idx].metadata, DocIndex: s.idx}
	}
	return out
}

func (idx *BM25Index) idf(term string) float64 {
	n := idx.docFreq[term]
	if n == 0 {
		return 0
	}
	total := float64(len(idx.docs))
	return math.Log((total-float64(n)+0.5)/(float64(n)+0.5) + 1.0)
}

func (idx *BM25Index) scoreDocument(queryTokens []string, docIdx int) float64 {
	doc := idx.docs[docIdx]
	tf := make(map[string]int, len(doc.tokens))
	for _, t := range doc.tokens {
		tf[t]++
	}

	avgDL := idx.avgDL
	if avgDL <= 0 {
		avgDL = 1e-10
	}

	var score float64
	for _, term := range queryTokens {
		freq := tf[term]
		if freq == 0 {
			continue
		}
		idfVal := idx.idf(term)
		numerator := float64(freq) * (idx.k1 + 1)
		denominator := float64(freq) + idx.k1*(1-idx.b+idx.b*float64(doc.length)/avgDL)
		score += idfVal * numerator / denominator
	}
	return score
}

// Clear removes every document from the index.
func (idx *BM25Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.docs = nil
	idx.docFreq = make(map[string]int)
	idx.totalDL = 0
	idx.avgDL = 0
}
