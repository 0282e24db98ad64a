package rangeset

import (
	"fmt"
	"io"
)

// Dump writes the set, one "start-end" line per range. Ranges are written in
// descending order of start, the same order ToVec uses.
func (r *Set[T]) Dump(w io.Writer) error {
	r.m.RLock()
	defer r.m.RUnlock()

	if _, err := fmt.Fprintf(w, "rangeset %q: %d ranges\n", r.name, r.tree.Len()); err != nil {
		return err
	}
	for _, e := range r.descending() {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// ToVec flattens the set into end, start pairs in descending order of start.
// [0,10) and [20,30) give [30 20 10 0].
func (r *Set[T]) ToVec() []T {
	r.m.RLock()
	defer r.m.RUnlock()

	out := make([]T, 0, 2*r.tree.Len())
	r.tree.Descend(func(e Range[T]) bool {
		out = append(out, e.to, e.from)
		return true
	})
	return out
}
