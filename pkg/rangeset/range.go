package rangeset

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Range is a half-open interval [from, to).
type Range[T constraints.Integer] struct {
	from T
	to   T
}

func RangeFrom[T constraints.Integer](from, to T) Range[T] {
	return Range[T]{from: from, to: to}
}

// From returns the inclusive lower bound of r.
func (r Range[T]) From() T { return r.from }

// To returns the exclusive upper bound of r.
func (r Range[T]) To() T { return r.to }

func (r Range[T]) String() string {
	return fmt.Sprintf("%d-%d", r.from, r.to)
}

// IsValid reports whether r holds at least one value.
func (r Range[T]) IsValid() bool {
	return r.from < r.to
}

func (r Range[T]) IsZero() bool {
	return r == Range[T]{}
}

func (r Range[T]) Contains(v T) bool {
	return r.from <= v && v < r.to
}

// Overlaps returns whether r and other share at least one value.
// Ranges that only touch do not overlap.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return r.from < other.to && other.from < r.to
}

// Touches returns whether r and other overlap or are adjacent, i.e. whether
// their union is a single range.
func (r Range[T]) Touches(other Range[T]) bool {
	return r.from <= other.to && other.from <= r.to
}

// Clip returns the part of r that lies within other. The result is invalid
// when the two do not overlap.
func (r Range[T]) Clip(other Range[T]) Range[T] {
	return Range[T]{from: max(r.from, other.from), to: min(r.to, other.to)}
}

// ParseRange parses a "from-to" string. Either bound may carry a leading
// minus sign, e.g. "-10--5".
func ParseRange[T constraints.Integer](s string) (Range[T], error) {
	var r Range[T]
	if s == "" {
		return r, fmt.Errorf("empty range")
	}
	h := strings.IndexByte(s[1:], '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h+1], s[h+2:]
	fromID, err := parseBound[T](from)
	if err != nil {
		return r, fmt.Errorf("invalid from %q in range %q: %w", from, s, err)
	}
	toID, err := parseBound[T](to)
	if err != nil {
		return r, fmt.Errorf("invalid to %q in range %q: %w", to, s, err)
	}
	return Range[T]{from: fromID, to: toID}, nil
}

func parseBound[T constraints.Integer](s string) (T, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := T(v)
		if int64(t) != v || (t < 0) != (v < 0) {
			return 0, fmt.Errorf("value %d out of range", v)
		}
		return t, nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	t := T(u)
	if uint64(t) != u || t < 0 {
		return 0, fmt.Errorf("value %d out of range", u)
	}
	return t, nil
}
