// Package session holds the per-engine user state containers: a bounded
// most-recent-first list and an insertion-ordered set.
package session

// Recent is a most-recent-first list holding at most Cap entries. Entries
// that share a key are collapsed so each key appears once. A nil key func
// disables deduplication.
type Recent[K comparable, V any] struct {
	capacity int
	key      func(V) K
	items    []V
}

// NewRecent creates a Recent with the given capacity. key extracts the
// identity used for deduplication and may be nil.
func NewRecent[K comparable, V any](capacity int, key func(V) K) *Recent[K, V] {
	return &Recent[K, V]{
		capacity: capacity,
		key:      key,
		items:    make([]V, 0, capacity),
	}
}

// Push puts v at the front, dropping any older entry with the same key and
// evicting from the back once the list is over capacity.
func (r *Recent[K, V]) Push(v V) {
	if r.key != nil {
		k := r.key(v)
		for i, existing := range r.items {
			if r.key(existing) == k {
				r.items = append(r.items[:i], r.items[i+1:]...)
				break
			}
		}
	}

	r.items = append(r.items, v)
	copy(r.items[1:], r.items[:len(r.items)-1])
	r.items[0] = v

	if len(r.items) > r.capacity {
		clear(r.items[r.capacity:])
		r.items = r.items[:r.capacity]
	}
}

// Items returns a copy of the entries, most recent first.
func (r *Recent[K, V]) Items() []V {
	out := make([]V, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of entries.
func (r *Recent[K, V]) Len() int {
	return len(r.items)
}

// Cap returns the maximum number of entries kept.
func (r *Recent[K, V]) Cap() int {
	return r.capacity
}

// Clear removes all entries.
func (r *Recent[K, V]) Clear() {
	clear(r.items)
	r.items = r.items[:0]
}
