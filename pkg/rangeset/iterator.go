package rangeset

import "golang.org/x/exp/constraints"

// Iterator walks a snapshot of a Set taken when it was created; later
// changes to the set are not reflected.
type Iterator[T constraints.Integer] struct {
	current int
	ranges  []Range[T]
}

func (r *Iterator[T]) Value() Range[T] {
	return r.ranges[r.current]
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.ranges)
}

// Iterate returns an iterator over the stored ranges in ascending order.
func (r *Set[T]) Iterate() *Iterator[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return &Iterator[T]{current: -1, ranges: r.ranges()}
}

// IterateReverse returns an iterator over the stored ranges in descending
// order.
func (r *Set[T]) IterateReverse() *Iterator[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return &Iterator[T]{current: -1, ranges: r.descending()}
}

func (r *Set[T]) descending() []Range[T] {
	out := make([]Range[T], 0, r.tree.Len())
	r.tree.Descend(func(e Range[T]) bool {
		out = append(out, e)
		return true
	})
	return out
}
