package slot

import (
	"github.com/wippyai/slotpool/errors"
)

// Pool is a generational slot pool: a homogeneous arena that stores values
// of type T contiguously and identifies each live occupant by a Handle.
//
// Each slot tracks a generation counter, a liveness flag, a ref-count, and
// an optional destroy hook. Slots are recycled through a free list; the
// generation is bumped on every removal so stale handles are detected on
// access instead of reading a recycled slot.
//
// Lifetime is driven by StrongRefs: the pool removes a slot, firing its
// destroy hook exactly once, when the last StrongRef referencing it is
// released. WeakRefs observe without owning.
//
// A Pool is strictly single-threaded. Concurrent use from multiple
// goroutines without external synchronization is undefined behavior; there
// are deliberately no locks or atomics here.
type Pool[T any] struct {
	data        []T
	generations []uint32
	alive       []bool
	refCounts   []uint32
	destroyFns  []func()
	freeList    []uint32
	observers   []Observer
	count       int
	maxCapacity int
}

// New creates an empty, unbounded pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{}
}

// NewWithCapacity creates an unbounded pool with storage pre-sized for n
// slots.
func NewWithCapacity[T any](n int) *Pool[T] {
	p := &Pool[T]{}
	p.Reserve(n)
	return p
}

// Create stores value in a new or recycled slot and returns a StrongRef
// holding the slot's initial ref-count of one.
//
// If the pool is at its maximum capacity the value is not stored and the
// zero (empty) StrongRef is returned; check Valid on the result.
func (p *Pool[T]) Create(value T) StrongRef[T] {
	if !p.CanCreate() {
		debugf("create refused: %d of %d slots in use", p.count, p.maxCapacity)
		return StrongRef[T]{}
	}

	h := p.allocateSlot(value)
	p.addRef(h)

	p.notify(Event{Type: EventCreated, Handle: h, RefCount: 1})
	return StrongRef[T]{pool: p, handle: h}
}

// Get returns a pointer to the element identified by h, or (nil, false) if
// the handle is stale, out of range, or references a dead slot. The pointer
// stays valid until the slot is removed or the backing storage is grown by
// a later Create or Reserve.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.IsValid(h) {
		return nil, false
	}
	return &p.data[h.Index], true
}

// IsValid reports whether h references a live occupant: index in range,
// slot alive, and generation matching.
func (p *Pool[T]) IsValid(h Handle) bool {
	if h.Index == InvalidIndex || uint64(h.Index) >= uint64(len(p.data)) {
		return false
	}
	if !p.alive[h.Index] {
		return false
	}
	return p.generations[h.Index] == h.Generation
}

// RefCount returns the number of outstanding StrongRefs for h, or 0 if the
// handle is invalid.
func (p *Pool[T]) RefCount(h Handle) uint32 {
	if !p.IsValid(h) {
		return 0
	}
	return p.refCounts[h.Index]
}

// Count returns the number of live slots.
func (p *Pool[T]) Count() int {
	return p.count
}

// Capacity returns the total number of slots ever allocated, alive or dead.
func (p *Pool[T]) Capacity() int {
	return len(p.data)
}

// SetMaxCapacity bounds the number of live slots; 0 means unbounded.
// Lowering the bound below Count never evicts existing elements, it only
// blocks future creation.
func (p *Pool[T]) SetMaxCapacity(n int) {
	p.maxCapacity = n
}

// MaxCapacity returns the current bound; 0 means unbounded.
func (p *Pool[T]) MaxCapacity() int {
	return p.maxCapacity
}

// CanCreate reports whether the pool will accept another element.
func (p *Pool[T]) CanCreate() bool {
	if p.maxCapacity == 0 {
		return true
	}
	return p.count < p.maxCapacity
}

// Each visits every live slot in increasing index order, passing the slot's
// current handle and a pointer to its element. The element may be mutated
// through the pointer. Returning false stops the walk.
//
// Removing slots while Each is running (releasing a last reference from
// inside fn) is unsupported: which remaining slots are visited is
// undefined.
func (p *Pool[T]) Each(fn func(Handle, *T) bool) {
	for i := range p.data {
		if !p.alive[i] {
			continue
		}
		h := Handle{Index: uint32(i), Generation: p.generations[i]}
		if !fn(h, &p.data[i]) {
			return
		}
	}
}

// Clear removes every element and resets the pool to its empty state.
//
// Destroy hooks of live slots fire in increasing index order before any
// storage is dropped. Afterward Count and Capacity are both 0 and every
// previously issued Handle, StrongRef, and WeakRef is invalid; outstanding
// refs are not individually notified, they simply fail their next validity
// check.
//
// Clear also discards generation counters, so a handle held across Clear
// can alias a later occupant of the same index once the pool is
// repopulated. Do not hold handles or refs across Clear.
func (p *Pool[T]) Clear() {
	for i := range p.data {
		if !p.alive[i] {
			continue
		}
		// Detach before firing so a hook that re-enters removal for its
		// own slot cannot fire twice.
		fn := p.destroyFns[i]
		p.destroyFns[i] = nil
		h := Handle{Index: uint32(i), Generation: p.generations[i]}
		if fn != nil {
			fn()
		}
		if p.alive[i] {
			p.notify(Event{Type: EventDestroyed, Handle: h})
		}
	}

	p.data = nil
	p.generations = nil
	p.alive = nil
	p.refCounts = nil
	p.destroyFns = nil
	p.freeList = nil
	p.count = 0
}

// Reserve pre-sizes the backing storage for at least n slots. It creates no
// elements and has no observable effect besides amortizing the cost of
// future growth.
func (p *Pool[T]) Reserve(n int) {
	if n <= cap(p.data) {
		return
	}
	p.data = append(make([]T, 0, n), p.data...)
	p.generations = append(make([]uint32, 0, n), p.generations...)
	p.alive = append(make([]bool, 0, n), p.alive...)
	p.refCounts = append(make([]uint32, 0, n), p.refCounts...)
	p.destroyFns = append(make([]func(), 0, n), p.destroyFns...)
}

// ShrinkToFit truncates the trailing run of dead slots and drops their
// indices from the free list. Slots below the truncation point keep their
// indices, so existing valid handles and refs are unaffected. A no-op when
// the highest slot is alive or the pool is empty.
func (p *Pool[T]) ShrinkToFit() {
	newLen := len(p.data)
	for newLen > 0 && !p.alive[newLen-1] {
		newLen--
	}
	if newLen == len(p.data) {
		return
	}

	p.data = p.data[:newLen:newLen]
	p.generations = p.generations[:newLen:newLen]
	p.alive = p.alive[:newLen:newLen]
	p.refCounts = p.refCounts[:newLen:newLen]
	p.destroyFns = p.destroyFns[:newLen:newLen]

	// Rebuild the free list without the truncated indices, keeping order.
	kept := p.freeList[:0]
	for _, idx := range p.freeList {
		if int(idx) < newLen {
			kept = append(kept, idx)
		}
	}
	p.freeList = kept
}

// Subscribe adds an observer for slot lifecycle events.
func (p *Pool[T]) Subscribe(o Observer) {
	p.observers = append(p.observers, o)
}

// Unsubscribe removes an observer.
func (p *Pool[T]) Unsubscribe(o Observer) {
	for i, obs := range p.observers {
		if obs == o {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// allocateSlot places value in a recycled or fresh slot and returns its
// handle. A recycled index keeps the generation it was given on removal; a
// fresh index starts at generation 0. Capacity is the creation API's
// responsibility, not re-checked here.
func (p *Pool[T]) allocateSlot(value T) Handle {
	var h Handle

	if len(p.freeList) > 0 {
		// Reuse the oldest freed slot.
		h.Index = p.freeList[0]
		p.freeList = p.freeList[1:]
		h.Generation = p.generations[h.Index]

		p.data[h.Index] = value
		p.alive[h.Index] = true
		p.refCounts[h.Index] = 0
		p.destroyFns[h.Index] = nil
	} else {
		h.Index = uint32(len(p.data))
		h.Generation = 0

		p.data = append(p.data, value)
		p.generations = append(p.generations, 0)
		p.alive = append(p.alive, true)
		p.refCounts = append(p.refCounts, 0)
		p.destroyFns = append(p.destroyFns, nil)
	}

	p.count++
	return h
}

// removeInternal frees the slot behind h. Called only with a valid handle
// whose ref-count has just reached zero.
//
// The destroy hook is taken and cleared before anything else so a
// re-entrant removal cannot fire it twice, and invoked only after the pool
// is back in a consistent state.
func (p *Pool[T]) removeInternal(h Handle) {
	fn := p.destroyFns[h.Index]
	p.destroyFns[h.Index] = nil

	var zero T
	p.data[h.Index] = zero
	p.alive[h.Index] = false
	p.generations[h.Index]++
	p.refCounts[h.Index] = 0
	p.freeList = append(p.freeList, h.Index)
	p.count--

	if fn != nil {
		fn()
	}
	p.notify(Event{Type: EventDestroyed, Handle: h})
}

// addRef increments the ref-count behind h. No-op for invalid handles.
func (p *Pool[T]) addRef(h Handle) {
	if p.IsValid(h) {
		p.refCounts[h.Index]++
	}
}

// releaseRef decrements the ref-count behind h and removes the slot when
// the count reaches zero. No-op for invalid handles.
//
// Releasing a slot whose count is already zero is a contract violation and
// panics; a valid handle with a zero count can only be observed if a
// counted unit was released twice.
func (p *Pool[T]) releaseRef(h Handle) {
	if !p.IsValid(h) {
		return
	}
	if p.refCounts[h.Index] == 0 {
		panic(errors.RefCountUnderflow(h))
	}
	p.refCounts[h.Index]--

	if p.refCounts[h.Index] == 0 {
		p.removeInternal(h)
	}
}

// setDestroyFn installs the hook fired when the slot behind h is removed.
// No-op for invalid handles.
func (p *Pool[T]) setDestroyFn(h Handle, fn func()) {
	if p.IsValid(h) {
		p.destroyFns[h.Index] = fn
	}
}

// clearDestroyFn removes the hook for the slot behind h. No-op for invalid
// handles.
func (p *Pool[T]) clearDestroyFn(h Handle) {
	if p.IsValid(h) {
		p.destroyFns[h.Index] = nil
	}
}

func (p *Pool[T]) notify(e Event) {
	for _, o := range p.observers {
		o.OnSlotEvent(e)
	}
}
