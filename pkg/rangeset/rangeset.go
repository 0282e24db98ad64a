package rangeset

import (
	"sync"

	"github.com/go-logr/logr"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const defaultDegree = 16

type options struct {
	name   string
	log    logr.Logger
	degree int
}

type Option func(*options)

// WithLogger sets the logger mutations are reported to, at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithName names the set in logs and dumps.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDegree sets the degree of the underlying btree.
func WithDegree(degree int) Option {
	return func(o *options) {
		if degree > 1 {
			o.degree = degree
		}
	}
}

// Set holds disjoint, non-adjacent half-open ranges keyed by their start.
//
// Add, Delete, Clear and Clone take the write lock; all other methods take the
// read lock, so queries may run concurrently with each other.
type Set[T constraints.Integer] struct {
	m    *sync.RWMutex
	name string
	log  logr.Logger
	tree *btree.BTreeG[Range[T]]
}

func New[T constraints.Integer](opts ...Option) *Set[T] {
	o := options{
		log:    logr.Discard(),
		degree: defaultDegree,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Set[T]{
		m:    new(sync.RWMutex),
		name: o.name,
		log:  o.log.WithValues("rangeset", o.name),
		tree: btree.NewG[Range[T]](o.degree, less[T]),
	}
}

func less[T constraints.Integer](a, b Range[T]) bool {
	return a.from < b.from
}

// Clone returns an independent copy of the set.
func (r *Set[T]) Clone() *Set[T] {
	// btree.Clone updates copy-on-write state on both trees
	r.m.Lock()
	defer r.m.Unlock()
	return &Set[T]{
		m:    new(sync.RWMutex),
		name: r.name,
		log:  r.log,
		tree: r.tree.Clone(),
	}
}

// Add merges [start, end) into the set, coalescing it with every stored range
// it overlaps or touches.
func (r *Set[T]) Add(start, end T) error {
	rng := RangeFrom(start, end)
	if err := validate(rng); err != nil {
		r.log.V(1).Info("add rejected", "range", rng.String())
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()

	r.add(rng)
	return nil
}

func (r *Set[T]) add(rng Range[T]) {
	s := coalesce(rng, r.floor(rng.from, false), r.floor(rng.to, false))
	erased := r.apply(s)
	r.log.V(1).Info("add", "range", rng.String(), "merged", s.insert[0].String(), "erased", len(erased))
}

// Delete removes [start, end) from the set, truncating or splitting stored
// ranges that are partially covered. Deleting a range that intersects nothing
// is a no-op.
func (r *Set[T]) Delete(start, end T) error {
	rng := RangeFrom(start, end)
	if err := validate(rng); err != nil {
		r.log.V(1).Info("delete rejected", "range", rng.String())
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()

	r.delete(rng)
	return nil
}

func (r *Set[T]) delete(rng Range[T]) {
	s := split(rng, r.floor(rng.from, true), r.floor(rng.to, true))
	erased := r.apply(s)
	if len(erased) == 0 && len(s.insert) != 0 {
		panic("residual ranges without an erased entry")
	}
	r.log.V(1).Info("delete", "range", rng.String(), "erased", len(erased), "residuals", len(s.insert))
}

// Query returns the parts of the stored ranges that fall within [start, end),
// in ascending order. Ranges touching [start, end) without overlapping it are
// not returned.
func (r *Set[T]) Query(start, end T) ([]Range[T], error) {
	rng := RangeFrom(start, end)
	if err := validate(rng); err != nil {
		r.log.V(1).Info("query rejected", "range", rng.String())
		return nil, err
	}
	r.m.RLock()
	defer r.m.RUnlock()

	return r.query(rng), nil
}

func (r *Set[T]) query(rng Range[T]) []Range[T] {
	var out []Range[T]
	if prev := r.floor(rng.from, true); prev != nil && prev.to > rng.from {
		out = append(out, prev.Clip(rng))
	}
	r.tree.AscendRange(Range[T]{from: rng.from}, Range[T]{from: rng.to}, func(e Range[T]) bool {
		out = append(out, e.Clip(rng))
		return true
	})
	return out
}

// Contains returns whether v lies within one of the stored ranges.
func (r *Set[T]) Contains(v T) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	e := r.floor(v, false)
	return e != nil && e.Contains(v)
}

// Len returns the number of stored ranges.
func (r *Set[T]) Len() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.tree.Len()
}

// Ranges returns a copy of the stored ranges in ascending order.
func (r *Set[T]) Ranges() []Range[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.ranges()
}

func (r *Set[T]) ranges() []Range[T] {
	out := make([]Range[T], 0, r.tree.Len())
	r.tree.Ascend(func(e Range[T]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Clear removes all ranges.
func (r *Set[T]) Clear() {
	r.m.Lock()
	defer r.m.Unlock()

	r.tree.Clear(false)
}

// floor returns the entry with the greatest start <= v, or < v when strict.
func (r *Set[T]) floor(v T, strict bool) *Range[T] {
	var found *Range[T]
	r.tree.DescendLessOrEqual(Range[T]{from: v}, func(e Range[T]) bool {
		if strict && e.from == v {
			return true
		}
		found = &e
		return false
	})
	return found
}

// apply erases the entries covered by s and stores its insert ranges.
// It returns the erased entries.
func (r *Set[T]) apply(s span[T]) []Range[T] {
	var erased []Range[T]
	r.tree.AscendGreaterOrEqual(Range[T]{from: s.lo}, func(e Range[T]) bool {
		if !s.covers(e.from) {
			return false
		}
		erased = append(erased, e)
		return true
	})
	// the tree must not be mutated while iterating
	for _, e := range erased {
		if _, ok := r.tree.Delete(e); !ok {
			panic("erasing an entry that was just visited failed")
		}
	}
	for _, e := range s.insert {
		if !e.IsValid() {
			panic("storing empty range " + e.String())
		}
		r.tree.ReplaceOrInsert(e)
	}
	return erased
}
