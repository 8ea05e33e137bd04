package hooks

import (
	"sort"
	"sync"
)

// Registry owns all registered hook definitions. Reads (GetHooks) are
// served from an immutable per-event slice rebuilt on every mutation,
// mirroring the read-mostly registry pattern used for agent definitions
// (see pkg/agentdef.Registry).
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*Definition
	order map[EventType][]*Definition // kept sorted by Priority ascending
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:  make(map[string]*Definition),
		order: make(map[EventType][]*Definition),
	}
}

// Register adds a hook definition. It returns ErrTooManyHooks if the
// event type already carries the maximum of 20 hooks.
func (r *Registry) Register(def *Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.order[def.Event]; len(existing) >= maxHooksPerEvent {
		if _, already := r.byID[def.ID]; !already {
			return ErrTooManyHooks
		}
	}

	r.byID[def.ID] = def
	r.rebuildLocked(def.Event)
	return nil
}

// Unregister removes a hook by ID.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	def, ok := r.byID[id]
	if !ok {
		return
	}
	delete(r.byID, id)
	r.rebuildLocked(def.Event)
}

func (r *Registry) rebuildLocked(event EventType) {
	var list []*Definition
	for _, d := range r.byID {
		if d.Event == event {
			list = append(list, d)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Priority < list[j].Priority })
	r.order[event] = list
}

// GetHooks returns the enabled hooks for an event, tenant-filtered:
// system hooks (TenantID == "") plus hooks matching tenant, in ascending
// priority order.
func (r *Registry) GetHooks(event EventType, tenant string) []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Definition
	for _, d := range r.order[event] {
		if !d.Enabled {
			continue
		}
		if d.TenantID == "" || d.TenantID == tenant {
			out = append(out, d)
		}
	}
	return out
}
