// Package dibs provides a minimal identifier-keyed dependency-injection
// container. Bindings map string identifiers to constructible type
// descriptors, and the resolution engine builds object graphs on demand by
// recursively resolving each descriptor's declared constructor parameters.
//
// # Overview
//
// dibs deliberately stays small. The library provides:
//   - Transient and singleton bindings keyed by string identifiers
//   - Recursive constructor-argument resolution with cycle detection
//   - Singleton identity management, including instance sharing across
//     identifiers bound to the same type
//   - Dependency groups resolved together as an ordered collection
//   - On-demand factory synthesis via the "Factory" identifier suffix
//
// Validation is lazy: nothing checks the whole binding set up front, and a
// missing or cyclic dependency surfaces only on the resolution path that
// actually reaches it.
//
// # Basic Usage
//
// Create a container, register bindings, and resolve:
//
//	c := dibs.New()
//	c.BindSingleton("logger", loggerType).
//		BindType("mailer", mailerType)
//
//	mailer, err := dibs.As[*Mailer](c, "mailer")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A constructible type is described by a descriptor carrying its name, its
// ordered dependency identifiers, and a variadic constructor:
//
//	mailerType := &dibs.Type{
//	    Name:   "Mailer",
//	    Params: []string{"logger"},
//	    New: func(args ...any) any {
//	        return &Mailer{Logger: args[0].(*Logger)}
//	    },
//	}
//
// # Singletons
//
// A singleton binding constructs at most one instance per identity key. The
// key is the bound type's name, so several identifiers bound to one type
// alias a single instance. Binder.CreateUniqueInstance widens the key with
// the binding's identifier, giving that identifier its own instance.
// Container.ResetSavedInstances drops all cached instances without touching
// the registry.
//
// # Groups
//
// Bindings that share a group identifier resolve together: resolving the
// group identifier returns a []any with each member's instance in
// registration order. Groups are derived at resolution time, never stored.
//
// # Factories
//
// Resolving a bound identifier with the "Factory" suffix appended returns a
// Factory callable instead of an instance. Caller arguments stand in for the
// leading declared constructor parameters; the rest are container-resolved.
// See Factory for the argument-ordering contract.
//
// # Concurrency
//
// Register bindings from a single goroutine before resolving. Resolutions
// may then run concurrently: each carries its own resolve chain, and
// singleton publication is atomic, so every resolution of one singleton key
// returns the same instance.
package dibs
