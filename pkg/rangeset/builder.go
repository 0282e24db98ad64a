package rangeset

import (
	"fmt"

	"golang.org/x/exp/constraints"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

type op[T constraints.Integer] struct {
	rng    Range[T]
	remove bool
}

// Builder records additions and removals and replays them, in order, into a
// new Set. Invalid input is collected rather than failing the build.
// The zero value is ready to use.
type Builder[T constraints.Integer] struct {
	opts []Option
	ops  []op[T]
	errs []error
}

func NewBuilder[T constraints.Integer](opts ...Option) *Builder[T] {
	return &Builder[T]{opts: opts}
}

func (s *Builder[T]) AddRange(r Range[T]) {
	if err := validate(r); err != nil {
		s.errs = append(s.errs, fmt.Errorf("addRange(%v): %w", r, err))
		return
	}
	s.ops = append(s.ops, op[T]{rng: r})
}

// RemoveRange removes all values in r from the result.
func (s *Builder[T]) RemoveRange(r Range[T]) {
	if err := validate(r); err != nil {
		s.errs = append(s.errs, fmt.Errorf("removeRange(%v): %w", r, err))
		return
	}
	s.ops = append(s.ops, op[T]{rng: r, remove: true})
}

// Add parses a "from-to" string and adds the range.
func (s *Builder[T]) Add(str string) {
	r, err := ParseRange[T](str)
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("add(%q): %w", str, err))
		return
	}
	s.AddRange(r)
}

// Remove parses a "from-to" string and removes the range.
func (s *Builder[T]) Remove(str string) {
	r, err := ParseRange[T](str)
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("remove(%q): %w", str, err))
		return
	}
	s.RemoveRange(r)
}

// AddSet adds all ranges in b.
func (s *Builder[T]) AddSet(b *Set[T]) {
	if b == nil {
		return
	}
	for _, r := range b.Ranges() {
		s.AddRange(r)
	}
}

// RemoveSet removes all ranges in b.
func (s *Builder[T]) RemoveSet(b *Set[T]) {
	if b == nil {
		return
	}
	for _, r := range b.Ranges() {
		s.RemoveRange(r)
	}
}

// Set builds the set from the valid input recorded so far. The returned error
// aggregates every rejected input and is reset afterwards.
func (s *Builder[T]) Set() (*Set[T], error) {
	set := New[T](s.opts...)
	for _, o := range s.ops {
		if o.remove {
			set.delete(o.rng)
		} else {
			set.add(o.rng)
		}
	}
	errs := s.errs
	s.errs = nil
	return set, utilerrors.NewAggregate(errs)
}
