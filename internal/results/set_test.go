package results

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestFinalizeSortsAndDeduplicates(t *testing.T) {
	s := NewSet()
	for _, c := range []string{"bb", "a", "ba", "a", "ab"} {
		s.Add(c)
	}

	want := []string{"a", "ab", "ba", "bb"}
	if got := s.Finalize(); !reflect.DeepEqual(got, want) {
		t.Errorf("Finalize() = %v, want %v", got, want)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	s := NewSet()
	s.Add("beta")
	s.Add("alpha")

	first := s.Finalize()
	second := s.Finalize()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Finalize not idempotent: %v then %v", first, second)
	}
}

func TestConcurrentAdds(t *testing.T) {
	s := NewSet()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// All workers insert the same 100 candidates.
			for i := 0; i < 100; i++ {
				s.Add(fmt.Sprintf("cand%03d", i))
			}
		}()
	}
	wg.Wait()

	if s.Len() != 100 {
		t.Errorf("expected 100 unique members, got %d", s.Len())
	}
	out := s.Finalize()
	if len(out) != 100 {
		t.Errorf("expected 100 finalized entries, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1] >= out[i] {
			t.Fatalf("output not strictly sorted at %d: %q >= %q", i, out[i-1], out[i])
		}
	}
}

func TestEmptySet(t *testing.T) {
	s := NewSet()
	if got := s.Finalize(); len(got) != 0 {
		t.Errorf("empty set finalized to %v", got)
	}
}
