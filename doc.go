// Package slotpool provides a generational slot pool with
// reference-counted handles for Go.
//
// Same-typed values are stored contiguously in a pool and addressed through
// (index, generation) handles. Counted strong references drive lifetime:
// when the last reference to a slot is released, the slot's destroy hook
// fires once and the slot is recycled. Generation counters turn
// use-after-free into a clean "no value" answer instead of a read of the
// slot's next occupant, which is the primitive underlying entity-component
// systems, resource caches, and scene graphs.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	slotpool/            Root package (this overview)
//	├── slot/            Core: Handle, Pool[T], StrongRef[T], WeakRef[T],
//	│                    lifecycle events and logging hooks
//	├── registry/        One pool per element type, constructed on first use
//	├── errors/          Structured error types
//	└── cmd/slotdemo/    Demo binary with an interactive TUI
//
// # Quick Start
//
//	pool := slot.New[Mesh]()
//	pool.SetMaxCapacity(1024)
//
//	ref := pool.Create(Mesh{Name: "Box"})
//	ref.SetOnDestroy(func() { fmt.Println("box destroyed") })
//
//	keep := ref.Clone() // second counted unit
//	weak := ref.Weak()  // owns nothing
//
//	ref.Release()
//	keep.Release() // last unit: hook fires, slot recycled
//
//	if _, ok := weak.Upgrade(); !ok {
//		// slot is gone; the weak ref cannot resurrect it
//	}
//
// # Concurrency
//
// Pools and references are single-threaded by design: no locks, no atomic
// ref-counts. Concurrent use of one pool from multiple goroutines without
// external synchronization is undefined behavior. The registry's
// construction-on-first-use is the one exception and is safe to call
// concurrently.
package slotpool
