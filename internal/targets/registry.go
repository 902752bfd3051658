package targets

import (
	"fmt"
	"sync"

	"github.com/Feng6611/Obsidian-open-in-Teminal/internal/settings"
)

// Registry tracks which targets are currently registered with the palette.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Target)}
}

// Register adds a target to the registry.
func (r *Registry) Register(t Target) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[t.ID]; exists {
		return fmt.Errorf("target %q already registered", t.ID)
	}
	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

// Remove drops a target by id. Unknown ids are a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[id]; !exists {
		return
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Refresh re-registers the enabled targets for the given settings. All
// previously registered ids are dropped first, so repeated settings changes
// never duplicate palette entries.
func (r *Registry) Refresh(s *settings.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = r.order[:0]
	r.byID = make(map[string]Target)
	for _, t := range All() {
		if Enabled(s, t) {
			r.byID[t.ID] = t
			r.order = append(r.order, t.ID)
		}
	}
}

// Get returns a registered target by id.
func (r *Registry) Get(id string) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, exists := r.byID[id]
	return t, exists
}

// Commands returns the registered targets in palette order.
func (r *Registry) Commands() []Target {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Target, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
