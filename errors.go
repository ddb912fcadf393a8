package dibs

import (
	"errors"
	"fmt"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// Base errors that typed errors wrap. Check for them with errors.Is.

var (
	// ErrBindingNotFound indicates an identifier matched no direct binding,
	// factory form, or group.
	ErrBindingNotFound = errors.New("binding not found")

	// ErrNotSingleton indicates a singleton-only configuration call was made
	// on a transient binding.
	ErrNotSingleton = errors.New("binding is not a singleton")

	// ErrTypeNil indicates a nil or non-constructible type descriptor.
	ErrTypeNil = errors.New("type is not constructible")
)

var (
	_ error = ConfigurationError{}
	_ error = CircularDependencyError{}
	_ error = UnresolvedDependencyError{}
	_ error = InvalidTypeError{}
	_ error = UnregisteredTypeError{}
	_ error = TypeMismatchError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// ConfigurationError indicates invalid builder usage at registration time,
// such as marking a transient binding as unique-instance.
type ConfigurationError struct {
	ID    string
	Cause error
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for binding %q: %v", e.ID, e.Cause)
}

func (e ConfigurationError) Unwrap() error {
	return e.Cause
}

// CircularDependencyError indicates that a resolution revisited an identifier
// already on the active resolve chain. Chain holds the identifiers in visit
// order, with the repeated identifier appended at the end.
type CircularDependencyError struct {
	Chain []string
}

func (e CircularDependencyError) Error() string {
	var b strings.Builder
	b.WriteString("circular dependency detected: ")
	for i, id := range e.Chain {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(id)
	}
	return b.String()
}

// UnresolvedDependencyError indicates that an identifier could not be
// resolved through any strategy. Chain holds the resolve-chain context at
// the point of failure; it is empty for a top-level request.
type UnresolvedDependencyError struct {
	ID    string
	Chain []string
}

func (e UnresolvedDependencyError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("unresolved dependency %q", e.ID)
	}
	return fmt.Sprintf("unresolved dependency %q (while resolving %s)", e.ID, strings.Join(e.Chain, " -> "))
}

func (e UnresolvedDependencyError) Unwrap() error {
	return ErrBindingNotFound
}

// InvalidTypeError indicates ResolveType was called with a nil or otherwise
// non-constructible type descriptor.
type InvalidTypeError struct{}

func (e InvalidTypeError) Error() string {
	return "resolve type: argument is not a constructible type"
}

func (e InvalidTypeError) Unwrap() error {
	return ErrTypeNil
}

// UnregisteredTypeError indicates ResolveType was called with a type that has
// no matching binding in the registry.
type UnregisteredTypeError struct {
	TypeName string
}

func (e UnregisteredTypeError) Error() string {
	return fmt.Sprintf("no binding registered for type %q", e.TypeName)
}

// TypeMismatchError indicates a resolved instance did not have the type the
// caller asked for via As.
type TypeMismatchError struct {
	ID       string
	Expected string
	Actual   string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("binding %q resolved to %s, not %s", e.ID, e.Actual, e.Expected)
}
