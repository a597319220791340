package registry

import (
	"reflect"
	"sync"

	"github.com/wippyai/slotpool/slot"
)

var (
	mu    sync.Mutex
	pools = map[reflect.Type]any{}
)

// Acquire returns the process-wide pool for element type T, constructing it
// on first use. Every call with the same T observes the same pool.
//
// Prefer passing an explicit *slot.Pool through calling code; reach for the
// registry only where a type-keyed singleton is genuinely required. The
// registry itself is safe to call from multiple goroutines, but the pools
// it hands out remain single-threaded.
func Acquire[T any]() *slot.Pool[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()

	if p, ok := pools[key]; ok {
		return p.(*slot.Pool[T])
	}
	p := slot.New[T]()
	pools[key] = p
	return p
}

// Create stores value in the pool for T and returns the resulting counted
// reference. On capacity refusal the reference is empty; check Valid before
// use.
func Create[T any](value T) slot.StrongRef[T] {
	return Acquire[T]().Create(value)
}

// SetMaxCapacity bounds the pool for T; 0 means unbounded.
func SetMaxCapacity[T any](n int) {
	Acquire[T]().SetMaxCapacity(n)
}

// Reset clears every registered pool (firing destroy hooks) and forgets
// them, so the next Acquire constructs a fresh pool. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	for _, p := range pools {
		p.(interface{ Clear() }).Clear()
	}
	pools = map[reflect.Type]any{}
}
