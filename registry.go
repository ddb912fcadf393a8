package dibs

import "sync"

// registry is the mutable identifier → binding store. It preserves insertion
// order because group aggregation and ResolveType are defined over it.
//
// Registration normally happens during single-threaded setup; the lock keeps
// the store safe if registration and resolution ever overlap.
type registry struct {
	mu       sync.RWMutex
	bindings map[string]*binding
	order    []string
}

func newRegistry() *registry {
	return &registry{
		bindings: make(map[string]*binding),
	}
}

// put registers b under its identifier, overwriting any existing binding for
// the same id. An overwritten binding keeps its original insertion position.
func (r *registry) put(b *binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bindings[b.id]; !exists {
		r.order = append(r.order, b.id)
	}
	r.bindings[b.id] = b
}

// get returns the binding for id, if any.
func (r *registry) get(id string) (*binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[id]
	return b, ok
}

// byGroup returns every binding whose group id equals groupID, in insertion
// order. Groups are not stored; they are derived on each call.
func (r *registry) byGroup(groupID string) []*binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var members []*binding
	for _, id := range r.order {
		if b := r.bindings[id]; b.group == groupID {
			members = append(members, b)
		}
	}
	return members
}

// byType returns the first-registered binding whose type descriptor is t.
// With duplicate registrations of one descriptor the first match wins; that
// order is a convention, not a contract.
func (r *registry) byType(t *Type) (*binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if b := r.bindings[id]; b.typ == t {
			return b, true
		}
	}
	return nil, false
}

// ids returns a snapshot of the registered identifiers in insertion order.
func (r *registry) ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// count returns the number of registered bindings.
func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// reset removes every binding.
func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings = make(map[string]*binding)
	r.order = nil
}
