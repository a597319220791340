package slot

// WeakRef is a non-owning reference to a pool slot. It contributes nothing
// to the ref-count and never keeps a slot alive; its only capability is
// attempting to re-acquire a StrongRef.
//
// The zero value is the empty weak reference, which never upgrades. Derive
// real ones from StrongRef.Weak.
type WeakRef[T any] struct {
	pool   *Pool[T]
	handle Handle
}

// Upgrade attempts to mint a new counted reference to the slot. It
// succeeds, incrementing the ref-count, only while the slot is alive and
// its generation still matches; once the slot was removed (or removed and
// recycled under a newer generation) it reports failure.
func (w WeakRef[T]) Upgrade() (StrongRef[T], bool) {
	if w.pool == nil || !w.pool.IsValid(w.handle) {
		return StrongRef[T]{}, false
	}
	w.pool.addRef(w.handle)
	return StrongRef[T]{pool: w.pool, handle: w.handle}, true
}

// Expired reports whether the referenced slot is gone. The empty weak
// reference is always expired.
func (w WeakRef[T]) Expired() bool {
	return w.pool == nil || !w.pool.IsValid(w.handle)
}

// Handle returns the underlying handle.
func (w WeakRef[T]) Handle() Handle {
	if w.pool == nil {
		return InvalidHandle()
	}
	return w.handle
}
