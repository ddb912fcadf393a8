package dibs

// binding is a single registry record: an identifier mapped to a
// constructible type plus its resolution policy.
type binding struct {
	id        string
	typ       *Type
	singleton bool

	// group is the optional secondary identifier shared by bindings that
	// resolve together as an ordered collection.
	group string

	// unique gives a singleton binding its own cache slot instead of
	// sharing one instance per type name. Singleton-only.
	unique bool
}

// Binder is the fluent configuration handle returned by BindType and
// BindSingleton. It mutates the just-registered binding in place; every
// call is effective immediately, there is no deferred apply step.
//
// Configuration mistakes are recorded on the handle and reported by Err:
//
//	b := c.BindType("mailer", mailerType).CreateUniqueInstance()
//	if err := b.Err(); err != nil {
//	    // ConfigurationError: unique-instance requires a singleton binding
//	}
type Binder struct {
	container *Container
	binding   *binding
	err       error
}

// GroupOnID places the binding in the named group. Resolving the group id
// returns every member's instance in registration order.
func (b *Binder) GroupOnID(groupID string) *Binder {
	b.binding.group = groupID
	return b
}

// CreateUniqueInstance marks a singleton binding so that its identifier gets
// a dedicated instance instead of sharing one per type name.
//
// Calling this on a transient binding records a ConfigurationError,
// retrievable via Err; the binding is left unchanged.
func (b *Binder) CreateUniqueInstance() *Binder {
	if !b.binding.singleton {
		if b.err == nil {
			b.err = ConfigurationError{ID: b.binding.id, Cause: ErrNotSingleton}
		}
		return b
	}
	b.binding.unique = true
	return b
}

// Err returns the first configuration error recorded on this handle, or nil.
func (b *Binder) Err() error {
	return b.err
}

// BindType registers an unrelated transient binding on the same container,
// allowing several registrations to be chained in one statement.
func (b *Binder) BindType(id string, t *Type) *Binder {
	return b.container.BindType(id, t)
}

// BindSingleton registers an unrelated singleton binding on the same
// container, allowing several registrations to be chained in one statement.
func (b *Binder) BindSingleton(id string, t *Type) *Binder {
	return b.container.BindSingleton(id, t)
}
