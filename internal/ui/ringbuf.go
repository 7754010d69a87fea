package ui

import "sync"

// ring is a fixed-size circular buffer of recently echoed candidates.
// Goroutine-safe: check workers push while the view reads.
type ring struct {
	mu    sync.Mutex
	buf   []string
	size  int
	head  int // next write position
	count int // number of valid entries (0..size)
}

func newRing(size int) *ring {
	return &ring{
		buf:  make([]string, size),
		size: size,
	}
}

// Push adds a candidate, overwriting the oldest if full.
func (r *ring) Push(c string) {
	r.mu.Lock()
	r.buf[r.head] = c
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
	r.mu.Unlock()
}

// Last returns the n most recent candidates in chronological order.
func (r *ring) Last(n int) []string {
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return nil
	}
	if n > r.count {
		n = r.count
	}

	result := make([]string, n)
	start := (r.head - n + r.size) % r.size
	if start+n <= r.size {
		copy(result, r.buf[start:start+n])
	} else {
		first := r.size - start
		copy(result, r.buf[start:])
		copy(result[first:], r.buf[:n-first])
	}
	return result
}

// Len returns the number of buffered candidates.
func (r *ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
