package slot

// StrongRef is a counted reference to a pool slot. While at least one
// counted unit exists for a slot, the slot stays alive; releasing the last
// unit removes the slot and fires its destroy hook.
//
// The zero value is the empty reference: not bound to any pool, invalid,
// and safe to Release.
//
// Counting contract: Go has no copy constructors, so the C++-style
// copy/move split becomes explicit here. Plain struct assignment aliases
// the same counted unit without touching the counter (the move path);
// Clone is the counted copy path and mints a new unit. Call Release exactly
// once per counted unit. Releasing through one alias and then using another
// alias of the same unit is the same bug as a double free in the original
// design.
type StrongRef[T any] struct {
	pool   *Pool[T]
	handle Handle
}

// Clone returns a new counted reference to the same slot, incrementing the
// ref-count. Cloning an empty or stale reference yields the empty
// reference.
func (r StrongRef[T]) Clone() StrongRef[T] {
	if r.pool == nil || !r.pool.IsValid(r.handle) {
		return StrongRef[T]{}
	}
	r.pool.addRef(r.handle)
	return StrongRef[T]{pool: r.pool, handle: r.handle}
}

// Release gives up this counted unit and resets the receiver to the empty
// reference. If this was the slot's last unit, the slot is removed and its
// destroy hook fires. Releasing an empty or stale reference is a no-op.
func (r *StrongRef[T]) Release() {
	if r.pool != nil {
		r.pool.releaseRef(r.handle)
	}
	r.pool = nil
	r.handle = InvalidHandle()
}

// Get returns a pointer to the referenced element, or (nil, false) if the
// reference is empty or the slot is gone. The validity check runs on every
// call; a stale reference never yields a recycled slot's data.
func (r StrongRef[T]) Get() (*T, bool) {
	if r.pool == nil {
		return nil, false
	}
	return r.pool.Get(r.handle)
}

// Valid reports whether the reference is bound and its slot is still alive
// at the expected generation.
func (r StrongRef[T]) Valid() bool {
	return r.pool != nil && r.pool.IsValid(r.handle)
}

// UseCount returns the slot's current ref-count, or 0 if the reference is
// invalid.
func (r StrongRef[T]) UseCount() uint32 {
	if r.pool == nil {
		return 0
	}
	return r.pool.RefCount(r.handle)
}

// Handle returns the underlying handle. The handle stays a plain value and
// does not keep the slot alive.
func (r StrongRef[T]) Handle() Handle {
	if r.pool == nil {
		return InvalidHandle()
	}
	return r.handle
}

// Weak derives a non-owning reference to the same slot.
func (r StrongRef[T]) Weak() WeakRef[T] {
	return WeakRef[T]{pool: r.pool, handle: r.handle}
}

// SetOnDestroy installs the hook fired exactly once when the slot is
// removed. The hook is shared by all references to the slot; setting it
// again replaces the previous one. No-op if the reference is invalid.
func (r StrongRef[T]) SetOnDestroy(fn func()) {
	if r.pool != nil {
		r.pool.setDestroyFn(r.handle, fn)
	}
}

// ClearOnDestroy removes the slot's destroy hook. No-op if the reference is
// invalid.
func (r StrongRef[T]) ClearOnDestroy() {
	if r.pool != nil {
		r.pool.clearDestroyFn(r.handle)
	}
}

// Equal reports whether both references name the same slot of the same
// pool. Two empty references are equal.
func (r StrongRef[T]) Equal(other StrongRef[T]) bool {
	return r.pool == other.pool && r.handle == other.handle
}
