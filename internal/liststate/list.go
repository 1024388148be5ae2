// Package liststate holds the ordered, id-keyed collection shared by the
// estimator and the todo list.
//
// A List is mutated only by whole-collection replacement: every change builds
// a fresh backing slice, so snapshots handed out earlier never change under
// the caller. Subscribers are told synchronously after each change.
package liststate

// ID identifies a row for its whole lifetime. Zero is never issued.
type ID uint64

// Sequence hands out increasing ids. Two calls never return the same value,
// however close together they happen.
type Sequence struct {
	last ID
}

func (s *Sequence) Next() ID {
	s.last++
	return s.last
}

// Row pairs a value with its id.
type Row[T any] struct {
	ID    ID
	Value T
}

// List is an ordered collection of rows. Order is insertion order; Add
// appends and Remove filters, nothing else reorders.
type List[T any] struct {
	seq  Sequence
	rows []Row[T]

	subs    []subscriber[T]
	nextSub int
}

type subscriber[T any] struct {
	key int
	fn  func([]Row[T])
}

// Add appends v with a fresh id.
func (l *List[T]) Add(v T) ID {
	id := l.seq.Next()
	next := make([]Row[T], len(l.rows), len(l.rows)+1)
	copy(next, l.rows)
	next = append(next, Row[T]{ID: id, Value: v})
	l.replace(next)
	return id
}

// Remove drops the row with the given id. It reports false, and leaves the
// list alone, when no row matches.
func (l *List[T]) Remove(id ID) bool {
	if l.index(id) < 0 {
		return false
	}
	next := make([]Row[T], 0, len(l.rows)-1)
	for _, r := range l.rows {
		if r.ID != id {
			next = append(next, r)
		}
	}
	l.replace(next)
	return true
}

// Update replaces the value of the matching row with fn(old). Position and
// every other row stay as they were.
func (l *List[T]) Update(id ID, fn func(T) T) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	next := make([]Row[T], len(l.rows))
	copy(next, l.rows)
	next[i].Value = fn(next[i].Value)
	l.replace(next)
	return true
}

// Get returns the value stored under id.
func (l *List[T]) Get(id ID) (T, bool) {
	if i := l.index(id); i >= 0 {
		return l.rows[i].Value, true
	}
	var zero T
	return zero, false
}

func (l *List[T]) Len() int { return len(l.rows) }

// Snapshot returns a copy of the current rows.
func (l *List[T]) Snapshot() []Row[T] {
	out := make([]Row[T], len(l.rows))
	copy(out, l.rows)
	return out
}

// Subscribe registers fn to receive a fresh snapshot after every change,
// in registration order. The returned func unregisters it.
func (l *List[T]) Subscribe(fn func([]Row[T])) (cancel func()) {
	key := l.nextSub
	l.nextSub++
	l.subs = append(l.subs, subscriber[T]{key: key, fn: fn})
	return func() {
		for i, s := range l.subs {
			if s.key == key {
				l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

func (l *List[T]) index(id ID) int {
	for i, r := range l.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (l *List[T]) replace(next []Row[T]) {
	l.rows = next
	for _, s := range l.subs {
		s.fn(l.Snapshot())
	}
}
