package kernel

import "iter"

// OrderedLog is an append-only sequence owned by an aggregate. Entries are
// never mutated in place. A positive limit evicts the oldest entries on append.
type OrderedLog[T any] struct {
	entries []T
	limit   int
}

// NewOrderedLog creates an empty log; limit <= 0 means unbounded.
func NewOrderedLog[T any](limit int) OrderedLog[T] {
	return OrderedLog[T]{limit: limit}
}

// RestoreOrderedLog rebuilds a persisted log, applying limit to the input.
func RestoreOrderedLog[T any](entries []T, limit int) OrderedLog[T] {
	l := OrderedLog[T]{limit: limit}
	for _, e := range entries {
		l.Append(e)
	}
	return l
}

func (l *OrderedLog[T]) Append(entry T) {
	l.entries = append(l.entries, entry)
	if l.limit > 0 && len(l.entries) > l.limit {
		overflow := len(l.entries) - l.limit
		l.entries = append(l.entries[:0:0], l.entries[overflow:]...)
	}
}

// Latest returns the most recently appended entry.
func (l OrderedLog[T]) Latest() (T, bool) {
	if len(l.entries) == 0 {
		var zero T
		return zero, false
	}
	return l.entries[len(l.entries)-1], true
}

func (l OrderedLog[T]) Len() int {
	return len(l.entries)
}

func (l OrderedLog[T]) Limit() int {
	return l.limit
}

// Entries returns a copy, oldest first.
func (l OrderedLog[T]) Entries() []T {
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

// All iterates oldest first.
func (l OrderedLog[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Filter returns the entries for which keep reports true, oldest first.
func (l OrderedLog[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, e := range l.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
