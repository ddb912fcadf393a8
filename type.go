package dibs

// Type describes a constructible type: a named constructor together with the
// ordered list of dependency identifiers its constructor declares.
//
// Name is the type's identity for singleton caching: every singleton binding
// of the same Type shares one instance unless the binding is marked
// unique-instance (see Binder.CreateUniqueInstance).
//
// Params lists the declared constructor dependencies in positional order.
// The container resolves each name through its own registry when an instance
// is built. Dynamic, caller-supplied constructor parameters must be declared
// after all container-resolvable ones (see Factory).
//
// New receives the constructor arguments (container-resolved dependencies
// first, then any caller-supplied factory arguments) and returns the built
// instance. New must not be nil.
type Type struct {
	Name   string
	Params []string
	New    func(args ...any) any
}

// constructible reports whether t can actually be built.
func (t *Type) constructible() bool {
	return t != nil && t.New != nil
}

// Extractor produces the ordered dependency-name list for a constructible
// type. The resolution engine trusts the returned list completely; it must
// be deterministic and order-preserving.
//
// The default extractor reads the declared Params of the descriptor. A custom
// extractor can be installed with WithExtractor, e.g. to derive names from
// generated metadata.
type Extractor func(t *Type) []string

// defaultExtractor returns the dependency names declared on the descriptor.
func defaultExtractor(t *Type) []string {
	return t.Params
}
