// Package slot provides a generational slot pool with reference-counted
// handles.
//
// A Pool stores same-typed values contiguously and identifies each live
// occupant by a Handle: a storage index paired with a generation counter.
// Slots are recycled through a free list, and every removal bumps the
// slot's generation, so a stale handle is detected on access instead of
// silently reading the slot's next occupant.
//
// # References
//
// Lifetime is managed by counted references:
//
//	pool := slot.New[Mesh]()
//
//	// Create stores the value and hands back the first counted unit.
//	ref := pool.Create(Mesh{Name: "Box"})
//
//	// Clone mints another counted unit; Release gives one up.
//	other := ref.Clone()
//	ref.Release()
//
//	// Dropping the last unit removes the slot and fires its hook.
//	other.SetOnDestroy(func() { fmt.Println("box destroyed") })
//	other.Release()
//
// Plain assignment of a StrongRef aliases the same counted unit (the move
// path); only Clone mints a new one. Call Release exactly once per unit.
//
// WeakRefs observe without owning:
//
//	weak := ref.Weak()
//	if strong, ok := weak.Upgrade(); ok {
//		// slot still alive, strong holds a fresh counted unit
//	}
//
// An upgrade fails once the slot is removed, including when its index has
// been recycled for a new occupant under a higher generation.
//
// # Handles
//
// Handles are plain values; they compare with ==, pack into a uint64 map
// key via Key, and are only meaningful to the pool that issued them. Every
// read API validates the generation, so invalid access yields an empty
// result rather than stale data.
//
// # Concurrency
//
// A Pool is strictly single-threaded. Every operation completes
// synchronously and the package contains no locks or atomics; concurrent
// use without external synchronization is undefined behavior.
package slot
