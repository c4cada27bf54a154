package arc_test

import (
	"testing"

	"github.com/arriety/arc"
)

func TestRegistryAssignsDenseStableIndices(t *testing.T) {
	reg := arc.NewTypeRegistry()

	a := reg.IndexOf(arc.KindOf(&compA{}))
	b := reg.IndexOf(arc.KindOf(&compB{}))
	c := reg.IndexOf(arc.KindOf(&compC{}))

	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("expected dense indices 0,1,2, got %d,%d,%d", a, b, c)
	}
	if got := reg.IndexOf(arc.KindOf(&compB{})); got != b {
		t.Fatalf("index for same kind changed: %d != %d", got, b)
	}
	if reg.Count() != 3 {
		t.Fatalf("expected 3 kinds, got %d", reg.Count())
	}
}

func TestRegistryLookupDoesNotAssign(t *testing.T) {
	reg := arc.NewTypeRegistry()

	if _, ok := reg.Lookup(arc.KindOf(&compA{})); ok {
		t.Fatalf("lookup of unseen kind reported a hit")
	}
	if reg.Count() != 0 {
		t.Fatalf("lookup assigned an index")
	}

	idx := reg.IndexOf(arc.KindOf(&compA{}))
	got, ok := reg.Lookup(arc.KindOf(&compA{}))
	if !ok || got != idx {
		t.Fatalf("lookup after assignment: got %d,%v want %d,true", got, ok, idx)
	}
}

func TestRegistryKindRoundTrip(t *testing.T) {
	reg := arc.NewTypeRegistry()
	idx := reg.IndexOf(arc.KindOf(&compA{}))

	kind, ok := reg.Kind(idx)
	if !ok || kind != arc.KindOf(compA{}) {
		t.Fatalf("kind round trip failed: %v, %v", kind, ok)
	}
	if _, ok := reg.Kind(99); ok {
		t.Fatalf("out of range index reported a kind")
	}
	if _, ok := reg.Kind(-1); ok {
		t.Fatalf("negative index reported a kind")
	}
}

func TestKindOfNormalizesPointers(t *testing.T) {
	if arc.KindOf(&compA{}) != arc.KindOf(compA{}) {
		t.Fatalf("pointer and value of the same struct should share a kind")
	}
	if arc.KindOf(&compA{}) == arc.KindOf(&compB{}) {
		t.Fatalf("distinct structs collapsed to one kind")
	}
}

func TestRegistryReset(t *testing.T) {
	reg := arc.NewTypeRegistry()
	reg.IndexOf(arc.KindOf(&compB{}))
	reg.IndexOf(arc.KindOf(&compA{}))
	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("reset left %d kinds behind", reg.Count())
	}
	// Fresh assignment order decides indices after a reset.
	if got := reg.IndexOf(arc.KindOf(&compA{})); got != 0 {
		t.Fatalf("expected first post-reset kind at 0, got %d", got)
	}
}
