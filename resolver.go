package dibs

import (
	"reflect"
	"slices"
	"strings"
)

// factorySuffix is the fixed literal appended to a bound identifier to
// request its factory form. The tail match is case-insensitive.
const factorySuffix = "Factory"

// Factory is the callable synthesized for a factory-form identifier.
//
// Arguments map positionally to the leading declared constructor parameters
// of the underlying binding; the remaining declared parameters are resolved
// from the container. The constructor is invoked with the container-resolved
// dependencies first and the caller-supplied arguments after them, so
// constructors must declare dynamic parameters after all container-resolvable
// ones. This ordering is a documented contract.
//
// For a singleton binding, construction happens at most once per singleton
// key across all factory invocations and direct resolutions; once an instance
// is cached, further arguments are accepted but have no effect.
type Factory func(args ...any) (any, error)

// Resolve resolves id and returns the constructed value.
//
// The strategies are tried in order on every call:
//
//  1. A direct binding constructs an instance of the bound type, resolving
//     its declared dependencies recursively.
//  2. An identifier of the form <base> + "Factory" (case-insensitive tail),
//     where <base> is directly bound, returns a Factory for <base>.
//  3. An identifier naming a group returns a []any holding each member's
//     resolution, in registration order.
//
// Anything else fails with UnresolvedDependencyError. A resolution that
// revisits an identifier already on its own chain fails with
// CircularDependencyError. Failures leave the registry and the singleton
// cache unchanged.
func (c *Container) Resolve(id string) (any, error) {
	return c.resolve(id, nil)
}

// resolve is the recursive engine behind Resolve. The chain is owned by one
// top-level resolution tree and travels as a parameter so concurrent
// resolutions never share cycle-detection state.
func (c *Container) resolve(id string, chain []string) (any, error) {
	if slices.Contains(chain, id) {
		return nil, CircularDependencyError{Chain: append(slices.Clone(chain), id)}
	}

	if b, ok := c.registry.get(id); ok {
		return c.construct(b, append(chain, id), nil)
	}

	if base, ok := factoryBase(id); ok {
		if b, bound := c.registry.get(base); bound {
			return c.newFactory(b), nil
		}
	}

	if members := c.registry.byGroup(id); len(members) > 0 {
		group := make([]any, 0, len(members))
		for _, m := range members {
			instance, err := c.resolve(m.id, chain)
			if err != nil {
				return nil, err
			}
			group = append(group, instance)
		}
		return group, nil
	}

	return nil, UnresolvedDependencyError{ID: id, Chain: slices.Clone(chain)}
}

// construct builds an instance of b, with supplied holding any leading
// constructor arguments provided by a factory caller.
//
// Supplied arguments always stand in for the leading declared parameters;
// the remaining declared parameters are resolved through the engine in
// declared order. The constructor receives the resolved dependencies first,
// then the supplied arguments.
func (c *Container) construct(b *binding, chain []string, supplied []any) (any, error) {
	var key instanceKey
	if b.singleton {
		key = singletonKey(b)
		if instance, ok := c.instances.get(key); ok {
			return instance, nil
		}
	}

	params := c.extractor(b.typ)
	if n := len(supplied); n < len(params) {
		params = params[n:]
	} else {
		params = nil
	}

	args := make([]any, 0, len(params)+len(supplied))
	for _, name := range params {
		dep, err := c.resolve(name, chain)
		if err != nil {
			return nil, err
		}
		args = append(args, dep)
	}
	args = append(args, supplied...)

	instance := b.typ.New(args...)
	if b.singleton {
		instance = c.instances.setIfAbsent(key, instance)
	}

	return instance, nil
}

// newFactory synthesizes the Factory callable for b. Each invocation starts
// a fresh resolution tree rooted at the binding's identifier.
func (c *Container) newFactory(b *binding) Factory {
	return func(args ...any) (any, error) {
		return c.construct(b, []string{b.id}, args)
	}
}

// factoryBase strips the factory suffix from id. It returns the base
// identifier and true when id ends with the suffix and the base is non-empty.
func factoryBase(id string) (string, bool) {
	if len(id) <= len(factorySuffix) {
		return "", false
	}
	tail := id[len(id)-len(factorySuffix):]
	if !strings.EqualFold(tail, factorySuffix) {
		return "", false
	}
	return id[:len(id)-len(factorySuffix)], true
}

// ResolveType resolves the first-registered binding whose type descriptor is
// t. It fails with InvalidTypeError when t is not constructible and with
// UnregisteredTypeError when no binding references t.
//
// When several bindings share one descriptor the first match in registration
// order wins. That choice is a convention to lean on at your own risk, not a
// guarantee.
func (c *Container) ResolveType(t *Type) (any, error) {
	if !t.constructible() {
		return nil, InvalidTypeError{}
	}

	b, ok := c.registry.byType(t)
	if !ok {
		return nil, UnregisteredTypeError{TypeName: t.Name}
	}

	return c.Resolve(b.id)
}

// As resolves id and asserts the result to T.
//
// Example:
//
//	mailer, err := dibs.As[*Mailer](c, "mailer")
func As[T any](c *Container, id string) (T, error) {
	var zero T

	instance, err := c.Resolve(id)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		// A constructor may legitimately return nil, in which case there is
		// no dynamic type to name.
		actual := "<nil>"
		if rt := reflect.TypeOf(instance); rt != nil {
			actual = rt.String()
		}
		return zero, TypeMismatchError{
			ID:       id,
			Expected: reflect.TypeOf((*T)(nil)).Elem().String(),
			Actual:   actual,
		}
	}

	return typed, nil
}
