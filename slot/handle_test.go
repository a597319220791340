package slot

import (
	"testing"
)

func TestHandle_Equality(t *testing.T) {
	a := Handle{Index: 3, Generation: 7}
	b := Handle{Index: 3, Generation: 7}
	if a != b {
		t.Fatal("handles with same index and generation must compare equal")
	}

	if (Handle{Index: 3, Generation: 8}) == a {
		t.Fatal("generation mismatch must not compare equal")
	}
	if (Handle{Index: 4, Generation: 7}) == a {
		t.Fatal("index mismatch must not compare equal")
	}
}

func TestHandle_Invalid(t *testing.T) {
	h := InvalidHandle()
	if h.IsValid() {
		t.Fatal("InvalidHandle must not be valid")
	}
	if h.Index != InvalidIndex {
		t.Fatalf("expected sentinel index, got %d", h.Index)
	}

	if !(Handle{Index: 0, Generation: 0}).IsValid() {
		t.Fatal("zero handle carries a real index and must pass the sentinel check")
	}
}

func TestHandle_Key(t *testing.T) {
	a := Handle{Index: 1, Generation: 2}
	b := Handle{Index: 2, Generation: 1}
	if a.Key() == b.Key() {
		t.Fatal("distinct handles must have distinct keys")
	}
	if a.Key() != uint64(1)<<32|2 {
		t.Fatalf("unexpected key packing: %x", a.Key())
	}

	seen := map[uint64]Handle{a.Key(): a}
	if got, ok := seen[(Handle{Index: 1, Generation: 2}).Key()]; !ok || got != a {
		t.Fatal("handle must be usable as a map key via Key")
	}
}

func TestHandle_String(t *testing.T) {
	if s := (Handle{Index: 5, Generation: 2}).String(); s != "slot(5@g2)" {
		t.Fatalf("unexpected String: %q", s)
	}
	if s := InvalidHandle().String(); s != "slot(invalid)" {
		t.Fatalf("unexpected invalid String: %q", s)
	}
}
