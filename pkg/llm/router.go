package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/contracts"
)

// prefixEntry is one row of the immutable resolution table.
type prefixEntry struct {
	prefix   string
	provider string
}

// Router implements contracts.ModelRouter: it resolves model identifiers
// to providers through an immutable (prefix, provider) table built once at
// startup, then performs completions against the resolved provider.
//
// Ambiguous prefixes resolve deterministically: longer prefixes win, and
// equal-length prefixes fall back to lexicographic provider-name order.
type Router struct {
	mu        sync.RWMutex
	providers map[string]Provider
	table     []prefixEntry
	fallback  string // provider used when no prefix matches, "" = none
}

// NewRouter creates an empty router. Use Register or AutoRegister to
// populate it, then treat it as read-only.
func NewRouter() *Router {
	return &Router{providers: make(map[string]Provider)}
}

// Register adds a provider and its claimed model prefixes, rebuilding the
// resolution table. The first registered provider becomes the fallback.
func (r *Router) Register(p Provider, prefixes []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[p.Name()] = p
	if r.fallback == "" {
		r.fallback = p.Name()
	}

	for _, prefix := range prefixes {
		r.table = append(r.table, prefixEntry{prefix: prefix, provider: p.Name()})
	}
	sortTable(r.table)
}

// sortTable orders entries longest-prefix-first, then lexicographically by
// provider name, giving deterministic resolution on ambiguous prefixes.
func sortTable(table []prefixEntry) {
	sort.SliceStable(table, func(i, j int) bool {
		if len(table[i].prefix) != len(table[j].prefix) {
			return len(table[i].prefix) > len(table[j].prefix)
		}
		if table[i].prefix != table[j].prefix {
			return table[i].prefix < table[j].prefix
		}
		return table[i].provider < table[j].provider
	})
}

// Resolve maps a model identifier to its provider.
func (r *Router) Resolve(model string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.table {
		if strings.HasPrefix(model, entry.prefix) {
			return r.providers[entry.provider], nil
		}
	}
	if r.fallback != "" {
		return r.providers[r.fallback], nil
	}
	return nil, fmt.Errorf("llm: no provider for model %q", model)
}

// Complete resolves the request's model and delegates to its provider.
func (r *Router) Complete(ctx context.Context, req contracts.CompletionRequest) (*contracts.CompletionResult, error) {
	provider, err := r.Resolve(req.Model)
	if err != nil {
		return nil, err
	}
	return provider.Complete(ctx, req)
}

// ListModels returns the default model of every registered provider,
// sorted for stable output.
func (r *Router) ListModels(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		models = append(models, p.Model())
	}
	sort.Strings(models)
	return models, nil
}

// ProviderNames returns registered provider names, sorted.
func (r *Router) ProviderNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AutoRegister builds a router from the provider registry. Providers are
// registered in name order, so re-running with the same configuration
// yields the same provider list and the same resolution table.
func AutoRegister(registry *config.LLMProviderRegistry) *Router {
	router := NewRouter()

	all := registry.GetAll()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg := all[name]
		router.Register(newHTTPProvider(name, cfg), cfg.ModelPrefixes)
	}
	return router
}
