package logger

import "sync"

// RingBuffer keeps the last N items pushed to it. Safe for concurrent use.
type RingBuffer[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	full  bool
}

// NewRingBuffer creates a ring buffer holding at most capacity items.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	return &RingBuffer[T]{items: make([]T, max(capacity, 1))}
}

// Push appends item, dropping the oldest one when the buffer is full.
func (r *RingBuffer[T]) Push(item T) {
	r.mu.Lock()
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
	if r.next == 0 {
		r.full = true
	}
	r.mu.Unlock()
}

// GetAll returns the buffered items, oldest first.
func (r *RingBuffer[T]) GetAll() []T {
	return r.Last(len(r.items))
}

// Last returns up to n of the newest items, oldest first.
func (r *RingBuffer[T]) Last(n int) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.len()
	n = min(max(n, 0), size)
	out := make([]T, 0, n)
	start := r.next - n
	if start < 0 {
		start += len(r.items)
	}
	for i := range n {
		out = append(out, r.items[(start+i)%len(r.items)])
	}
	return out
}

func (r *RingBuffer[T]) len() int {
	if r.full {
		return len(r.items)
	}
	return r.next
}
