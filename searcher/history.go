package searcher

import "slices"

// Recent is the read-only view of History a search is given.
type Recent interface {
	Contains(key string) bool
}

// History remembers the canonical forms of the last positions occupied, up to
// a fixed capacity. Adding past capacity forgets the oldest entry.
type History struct {
	capacity int
	keys     []string // Oldest first
	counts   map[string]int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		panic("history capacity must be positive")
	}
	return &History{
		capacity: capacity,
		keys:     make([]string, 0, capacity),
		counts:   make(map[string]int, capacity),
	}
}

func (h *History) Add(key string) {
	h.keys = append(h.keys, key)
	h.counts[key]++
	if len(h.keys) > h.capacity {
		oldest := h.keys[0]
		h.keys = slices.Delete(h.keys, 0, 1)
		if h.counts[oldest]--; h.counts[oldest] == 0 {
			delete(h.counts, oldest)
		}
	}
}

func (h *History) Contains(key string) bool {
	return h.counts[key] > 0
}

func (h *History) Len() int {
	return len(h.keys)
}

func (h *History) Capacity() int {
	return h.capacity
}

// Keys returns the remembered entries, oldest first.
func (h *History) Keys() []string {
	return slices.Clone(h.keys)
}
