package dibs

import (
	"sync"
)

// instanceKey identifies one singleton cache slot.
//
// BindingID is empty for shared singletons, so every identifier bound to the
// same type name lands on one slot. Unique-instance bindings add their own
// identifier and therefore get a dedicated slot.
type instanceKey struct {
	TypeName  string
	BindingID string
}

// singletonKey computes the cache slot for a singleton binding.
func singletonKey(b *binding) instanceKey {
	key := instanceKey{TypeName: b.typ.Name}
	if b.unique {
		key.BindingID = b.id
	}
	return key
}

// instanceCache provides thread-safe caching for singleton instances.
// For a fixed key at most one instance is ever stored; entries never expire
// and are removed only by clear.
type instanceCache struct {
	instances map[instanceKey]any
	mu        sync.RWMutex
}

// newInstanceCache creates a new instance cache
func newInstanceCache() *instanceCache {
	return &instanceCache{
		instances: make(map[instanceKey]any),
	}
}

// get retrieves an instance from the cache
func (c *instanceCache) get(key instanceKey) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	instance, ok := c.instances[key]
	return instance, ok
}

// setIfAbsent publishes an instance for key unless one is already present,
// and returns the instance that won. The check-then-set runs under the lock,
// so concurrent resolutions of one key always observe a single instance.
func (c *instanceCache) setIfAbsent(key instanceKey, instance any) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[key]; ok {
		return existing
	}
	c.instances[key] = instance
	return instance
}

// len returns the number of cached instances
func (c *instanceCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instances)
}

// clear removes all instances from the cache
func (c *instanceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[instanceKey]any)
}
