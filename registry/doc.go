// Package registry exposes one slot pool per element type.
//
// It is the thin accessor layer over package slot: a process-wide,
// lazily-constructed pool keyed by element type, with a Create convenience
// that hands back a counted reference.
//
//	ref := registry.Create(Mesh{Name: "Box"})
//	if !ref.Valid() {
//		// pool for Mesh is at capacity
//	}
//	defer ref.Release()
//
// Pools live for the remainder of the process; there are no teardown
// ordering guarantees relative to other process-wide state. Code that can
// thread a *slot.Pool through explicitly should do that instead.
package registry
