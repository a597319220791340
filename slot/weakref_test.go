package slot

import (
	"testing"
)

func TestWeakRef_ZeroValue(t *testing.T) {
	var weak WeakRef[mesh]

	if !weak.Expired() {
		t.Fatal("zero weak ref must be expired")
	}
	if _, ok := weak.Upgrade(); ok {
		t.Fatal("zero weak ref must not upgrade")
	}
	if weak.Handle().IsValid() {
		t.Fatal("zero weak ref must carry the sentinel handle")
	}
}

func TestWeakRef_UpgradeWhileAlive(t *testing.T) {
	pool := New[mesh]()

	ref := pool.Create(mesh{name: "box"})
	weak := ref.Weak()

	if weak.Expired() {
		t.Fatal("weak ref to a live slot must not be expired")
	}

	before := ref.UseCount()
	strong, ok := weak.Upgrade()
	if !ok {
		t.Fatal("upgrade must succeed while a strong copy is alive")
	}
	if strong.UseCount() != before+1 {
		t.Fatalf("upgrade must increment the count by one: %d -> %d", before, strong.UseCount())
	}
	if !strong.Equal(ref) {
		t.Fatal("upgraded ref must name the same slot")
	}

	v, ok := strong.Get()
	if !ok || v.name != "box" {
		t.Fatal("upgraded ref must read the element")
	}

	strong.Release()
	if ref.UseCount() != before {
		t.Fatal("releasing the upgraded ref must restore the count")
	}
}

func TestWeakRef_UpgradeAfterExpiry(t *testing.T) {
	pool := New[mesh]()

	ref := pool.Create(mesh{name: "box"})
	weak := ref.Weak()
	ref.Release()

	if !weak.Expired() {
		t.Fatal("weak ref must expire when the last strong copy is dropped")
	}
	if _, ok := weak.Upgrade(); ok {
		t.Fatal("upgrade must fail after natural expiry")
	}
}

func TestWeakRef_UpgradeAfterRecycle(t *testing.T) {
	pool := New[mesh]()

	ref := pool.Create(mesh{name: "first"})
	weak := ref.Weak()
	oldIndex := ref.Handle().Index
	ref.Release()

	// Recycle the same index under a newer generation.
	ref2 := pool.Create(mesh{name: "second"})
	if ref2.Handle().Index != oldIndex {
		t.Fatalf("expected index %d to be recycled", oldIndex)
	}

	if _, ok := weak.Upgrade(); ok {
		t.Fatal("weak ref to the old occupant must not upgrade to the new one")
	}
	if !weak.Expired() {
		t.Fatal("weak ref to the old occupant must be expired")
	}

	// The live occupant's own weak ref still works.
	if _, ok := ref2.Weak().Upgrade(); !ok {
		t.Fatal("weak ref to the current occupant must upgrade")
	}
}

func TestWeakRef_FromEmptyStrongRef(t *testing.T) {
	var ref StrongRef[mesh]
	weak := ref.Weak()

	if !weak.Expired() {
		t.Fatal("weak ref derived from the zero strong ref must be expired")
	}
	if _, ok := weak.Upgrade(); ok {
		t.Fatal("weak ref derived from the zero strong ref must not upgrade")
	}
}

func TestWeakRef_KeepsNothingAlive(t *testing.T) {
	pool := New[mesh]()

	ref := pool.Create(mesh{name: "box"})
	weak := ref.Weak()

	if ref.UseCount() != 1 {
		t.Fatalf("deriving a weak ref must not touch the count, got %d", ref.UseCount())
	}

	ref.Release()
	if pool.Count() != 0 {
		t.Fatal("an outstanding weak ref must not keep the slot alive")
	}
	_ = weak
}
