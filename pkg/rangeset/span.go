package rangeset

import "golang.org/x/exp/constraints"

// span describes what a mutation does to the stored entries: every entry
// whose start lies in [lo, hi), or [lo, hi] when closed, is erased and the
// ranges in insert are stored afterwards.
type span[T constraints.Integer] struct {
	lo     T
	hi     T
	closed bool
	insert []Range[T]
}

func (s span[T]) covers(start T) bool {
	if start < s.lo {
		return false
	}
	if s.closed {
		return start <= s.hi
	}
	return start < s.hi
}

// coalesce computes the span for adding r.
//   - prev is the entry with the greatest start <= r.From(), nil if none
//   - last is the entry with the greatest start <= r.To(), nil if none
//
// Entries touching r on either side are absorbed into the single merged range.
func coalesce[T constraints.Integer](r Range[T], prev, last *Range[T]) span[T] {
	merged := r
	if prev != nil && prev.to >= r.from {
		//  prev
		// f-----t
		//       f------t
		//          r
		merged.from = prev.from
	}
	if last != nil && last.to > merged.to {
		//          last
		//        f------t
		// f------t
		//    r
		merged.to = last.to
	}
	return span[T]{
		lo:     merged.from,
		hi:     r.to,
		closed: true,
		insert: []Range[T]{merged},
	}
}

// split computes the span for deleting r.
//   - prev is the entry with the greatest start < r.From(), nil if none
//   - last is the entry with the greatest start < r.To(), nil if none
//
// Entries that only touch r are left alone; partially covered entries leave a
// residual on the side sticking out of r.
func split[T constraints.Integer](r Range[T], prev, last *Range[T]) span[T] {
	s := span[T]{lo: r.from, hi: r.to}
	if prev != nil && prev.to > r.from {
		//   prev
		// f------t
		//    f------t
		//       r
		s.lo = prev.from
		s.insert = append(s.insert, Range[T]{from: prev.from, to: r.from})
	}
	if last != nil && last.to > r.to {
		//          last
		//       f------t
		//  f------t
		//     r
		s.insert = append(s.insert, Range[T]{from: r.to, to: last.to})
	}
	return s
}
