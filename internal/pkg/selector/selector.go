// Package selector implements random selection without immediate
// repetition: no pool entry is drawn twice until every entry has been
// drawn, at which point the pool implicitly resets.
package selector

import (
	"github.com/KirkDiggler/rpg-cli/internal/pkg/rng"
)

// Selector draws random items from a pool such that no position repeats
// within one exhaustion cycle. Usage is tracked by position, not value,
// so duplicate entries act as independent draws (repeating an entry
// weights it).
type Selector[T any] struct {
	roller rng.Roller
	items  []T
	used   map[int]struct{}
}

// New creates a selector over a copy of the given pool
func New[T any](roller rng.Roller, items ...T) *Selector[T] {
	s := &Selector[T]{
		roller: roller,
		items:  make([]T, len(items)),
		used:   make(map[int]struct{}),
	}
	copy(s.items, items)
	return s
}

// Add appends an item to the pool. Duplicates are allowed and weight the
// selection toward the repeated value.
func (s *Selector[T]) Add(item T) {
	s.items = append(s.items, item)
}

// Pull returns a random item that has not been drawn since the last reset.
// When every position has been drawn, the used set clears and the whole
// pool becomes available again within the same call. An empty pool returns
// the zero value and false.
func (s *Selector[T]) Pull() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	available := s.available()
	if len(available) == 0 {
		s.Reset()
		available = s.available()
	}

	idx := available[s.roller.IntN(len(available))]
	s.used[idx] = struct{}{}
	return s.items[idx], true
}

// Reset makes every position available again
func (s *Selector[T]) Reset() {
	clear(s.used)
}

// Len returns the pool size
func (s *Selector[T]) Len() int {
	return len(s.items)
}

// Remaining returns how many positions are still undrawn in this cycle
func (s *Selector[T]) Remaining() int {
	return len(s.items) - len(s.used)
}

func (s *Selector[T]) available() []int {
	available := make([]int, 0, len(s.items)-len(s.used))
	for i := range s.items {
		if _, drawn := s.used[i]; !drawn {
			available = append(available, i)
		}
	}
	return available
}
