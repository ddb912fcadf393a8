package dibs

import (
	"github.com/google/uuid"
)

// Container is the dependency-injection container: an identifier-keyed
// binding registry plus a singleton instance cache and the resolution engine
// operating over them.
//
// A Container is an explicit value with its own lifecycle; create one with
// New and drop it when done. There is no package-level default container.
//
// Registration is expected to happen during a single-threaded setup phase.
// Resolution is safe for concurrent use; singleton publication is atomic, so
// every resolution of one singleton key observes the same instance.
type Container struct {
	id        string
	registry  *registry
	instances *instanceCache
	extractor Extractor
}

// Option configures a Container.
type Option func(*Container)

// WithExtractor replaces the dependency-name extractor. The extractor must be
// deterministic and order-preserving; the engine trusts its output fully.
func WithExtractor(e Extractor) Option {
	return func(c *Container) {
		if e != nil {
			c.extractor = e
		}
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		id:        uuid.NewString(),
		registry:  newRegistry(),
		instances: newInstanceCache(),
		extractor: defaultExtractor,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ID returns the unique identifier of this container instance. It exists for
// diagnostics when several containers are alive at once.
func (c *Container) ID() string {
	return c.id
}

// BindType registers a transient binding: every resolution of id constructs
// a fresh instance. Any existing binding for id is overwritten. The returned
// Binder configures the new binding in place.
func (c *Container) BindType(id string, t *Type) *Binder {
	return c.bind(id, t, false)
}

// BindSingleton registers a singleton binding: at most one instance is
// constructed per identity key (per type name, or per identifier when the
// binding is marked unique-instance). Any existing binding for id is
// overwritten. The returned Binder configures the new binding in place.
func (c *Container) BindSingleton(id string, t *Type) *Binder {
	return c.bind(id, t, true)
}

func (c *Container) bind(id string, t *Type, singleton bool) *Binder {
	b := &binding{
		id:        id,
		typ:       t,
		singleton: singleton,
	}
	c.registry.put(b)
	return &Binder{container: c, binding: b}
}

// CanResolve reports whether id names a direct binding, or is the factory
// form (id + "Factory", matched case-insensitively) of a direct binding.
//
// Group identifiers are resolvable but deliberately not reported here; the
// predicate covers direct and factory forms only.
func (c *Container) CanResolve(id string) bool {
	if _, ok := c.registry.get(id); ok {
		return true
	}
	if base, ok := factoryBase(id); ok {
		_, bound := c.registry.get(base)
		return bound
	}
	return false
}

// ResetSavedInstances clears the singleton instance cache. The binding
// registry is untouched; instance references already handed to callers are
// unaffected. The next resolution of a singleton constructs anew.
func (c *Container) ResetSavedInstances() {
	c.instances.clear()
}

// Reset clears the container completely: all bindings and all cached
// singleton instances.
func (c *Container) Reset() {
	c.registry.reset()
	c.instances.clear()
}

// Count returns the number of registered bindings.
func (c *Container) Count() int {
	return c.registry.count()
}

// BindingIDs returns the registered identifiers in registration order.
// Useful for inspection and debugging.
func (c *Container) BindingIDs() []string {
	return c.registry.ids()
}
