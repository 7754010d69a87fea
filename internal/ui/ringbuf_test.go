package ui

import (
	"slices"
	"testing"
)

func TestRingKeepsNewest(t *testing.T) {
	r := newRing(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		r.Push(s)
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	got := r.Last(3)
	if !slices.Equal(got, []string{"c", "d", "e"}) {
		t.Errorf("Last(3) = %v", got)
	}
}

func TestRingLastFewerThanStored(t *testing.T) {
	r := newRing(8)
	r.Push("x")
	r.Push("y")
	r.Push("z")
	if got := r.Last(2); !slices.Equal(got, []string{"y", "z"}) {
		t.Errorf("Last(2) = %v", got)
	}
	if got := r.Last(10); !slices.Equal(got, []string{"x", "y", "z"}) {
		t.Errorf("Last(10) = %v", got)
	}
}

func TestRingEmpty(t *testing.T) {
	r := newRing(4)
	if r.Len() != 0 {
		t.Errorf("Len = %d", r.Len())
	}
	if got := r.Last(4); len(got) != 0 {
		t.Errorf("Last on empty = %v", got)
	}
}
