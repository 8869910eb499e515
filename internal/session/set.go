package session

import "slices"

// OrderedSet keeps unique values in insertion order.
type OrderedSet[K comparable] struct {
	items []K
}

// Add appends k unless it is already present. It reports whether k was added.
func (s *OrderedSet[K]) Add(k K) bool {
	if s.Contains(k) {
		return false
	}
	s.items = append(s.items, k)
	return true
}

// Remove deletes k, keeping the order of the rest. It reports whether k was
// present.
func (s *OrderedSet[K]) Remove(k K) bool {
	i := slices.Index(s.items, k)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Contains reports whether k is in the set.
func (s *OrderedSet[K]) Contains(k K) bool {
	return slices.Contains(s.items, k)
}

// Items returns a copy of the values in insertion order.
func (s *OrderedSet[K]) Items() []K {
	return slices.Clone(s.items)
}

// Len returns the number of values.
func (s *OrderedSet[K]) Len() int {
	return len(s.items)
}
