package dibs

import (
	"github.com/google/uuid"
)

// ============================================================================
// Shared Test Types
// ============================================================================

// TLogger is a leaf service with no dependencies.
type TLogger struct {
	ID string
}

// TMailer depends on a logger.
type TMailer struct {
	Logger *TLogger
}

// TWidget captures its raw constructor arguments for factory tests.
type TWidget struct {
	P1 any
	P2 any
}

// ============================================================================
// Descriptor Builders
// ============================================================================

// loggerType returns a fresh TLogger descriptor. When counter is non-nil it
// is incremented on every construction, so tests can assert how many times
// the constructor actually ran.
func loggerType(counter *int) *Type {
	return &Type{
		Name: "TLogger",
		New: func(args ...any) any {
			if counter != nil {
				*counter++
			}
			return &TLogger{ID: uuid.NewString()}
		},
	}
}

// mailerType returns a TMailer descriptor depending on the "logger" binding.
func mailerType() *Type {
	return &Type{
		Name:   "TMailer",
		Params: []string{"logger"},
		New: func(args ...any) any {
			return &TMailer{Logger: args[0].(*TLogger)}
		},
	}
}

// widgetType returns a TWidget descriptor with two declared parameters that
// are deliberately left unregistered in most tests.
func widgetType() *Type {
	return &Type{
		Name:   "TWidget",
		Params: []string{"p1", "p2"},
		New: func(args ...any) any {
			return &TWidget{P1: args[0], P2: args[1]}
		},
	}
}

// nodeType builds a descriptor that depends on the given identifiers, for
// wiring arbitrary graph shapes in cycle and chain tests. The constructed
// value is just the node name.
func nodeType(name string, deps ...string) *Type {
	return &Type{
		Name:   name,
		Params: deps,
		New: func(args ...any) any {
			return name
		},
	}
}
