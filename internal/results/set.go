// Package results accumulates candidates confirmed available during a
// checking run.
//
// A Set belongs to the run that produced it. Add is the only mutation that
// happens while a run is in flight and is safe to call from many goroutines;
// Finalize is read-only and may be called any number of times.
package results

import (
	"sort"
	"sync"
)

// Set is an unordered, concurrency-safe set of confirmed candidates.
type Set struct {
	mu      sync.Mutex
	members map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Add records a confirmed candidate. Duplicate adds collapse.
func (s *Set) Add(candidate string) {
	s.mu.Lock()
	s.members[candidate] = struct{}{}
	s.mu.Unlock()
}

// Has reports whether candidate is a member.
func (s *Set) Has(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.members[candidate]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

// Finalize returns the members deduplicated and sorted lexicographically.
// Calling it twice yields identical output; the Set is not consumed.
func (s *Set) Finalize() []string {
	s.mu.Lock()
	out := make([]string, 0, len(s.members))
	for m := range s.members {
		out = append(out, m)
	}
	s.mu.Unlock()

	sort.Strings(out)
	return out
}
