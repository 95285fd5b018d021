package span

import (
	"cmp"

	"github.com/rdleal/intervalst/interval"
	"golang.org/x/exp/slices"
)

type spanTree = interval.MultiValueSearchTree[*Span, int]

// Registry leverages one interval tree per kind to store possibly
// overlapping spans of a text of a known length.
//
// Registry is not safe for concurrent mutation.
type Registry struct {
	trees  map[Kind]*spanTree
	counts map[Kind]int
	// length of the text in runes.
	length int
	seq    uint64
}

// NewRegistry creates an empty registry for a text of length runes.
func NewRegistry(length int) *Registry {
	return &Registry{
		trees:  make(map[Kind]*spanTree),
		counts: make(map[Kind]int),
		length: max(length, 0),
	}
}

func newSpanTree() *spanTree {
	return interval.NewMultiValueSearchTreeWithOptions[*Span](func(a, b int) int {
		return cmp.Compare(a, b)
	}, interval.TreeWithIntervalPoint())
}

func (r *Registry) tree(kind Kind) *spanTree {
	t, ok := r.trees[kind]
	if !ok {
		t = newSpanTree()
		r.trees[kind] = t
	}
	return t
}

// Len returns the length of the text the registry covers.
func (r *Registry) Len() int {
	return r.length
}

// Count returns the number of attached spans of kind.
func (r *Registry) Count(kind Kind) int {
	return r.counts[kind]
}

// Insert attaches a new span of attr over [start, end).
func (r *Registry) Insert(attr Attribute, start, end int, flags Flags) (*Span, error) {
	if err := r.checkRange(attr, start, end); err != nil {
		return nil, err
	}

	r.seq++
	s := &Span{
		attr:  attr,
		start: start,
		end:   end,
		flags: flags,
		seq:   r.seq,
		owner: r,
	}

	if err := r.tree(attr.Kind()).Insert(start, end, s); err != nil {
		return nil, &InvalidRangeError{Kind: attr.Kind(), Start: start, End: end, Len: r.length, Reason: err.Error()}
	}
	r.counts[attr.Kind()]++
	return s, nil
}

func (r *Registry) checkRange(attr Attribute, start, end int) error {
	rangeErr := func(reason string) error {
		return &InvalidRangeError{Kind: attr.Kind(), Start: start, End: end, Len: r.length, Reason: reason}
	}

	switch {
	case start < 0 || end > r.length:
		return rangeErr("out of bounds")
	case start > end:
		return rangeErr("start after end")
	case start == end:
		if rejecter, ok := attr.(EmptyRejecter); ok && rejecter.RejectsEmpty() {
			return rangeErr("empty range not allowed")
		}
	}
	return nil
}

// Remove detaches s from the registry. Removing a span which is nil, already
// detached or attached to another registry is a no-op.
func (r *Registry) Remove(s *Span) error {
	if s == nil || s.owner != r {
		return nil
	}

	t := r.tree(s.Kind())
	vals, ok := t.Find(s.start, s.end)
	if !ok {
		s.owner = nil
		return nil
	}

	rest := make([]*Span, 0, len(vals))
	for _, v := range vals {
		if v != s {
			rest = append(rest, v)
		}
	}

	var err error
	if len(rest) == 0 {
		err = t.Delete(s.start, s.end)
	} else {
		err = t.Upsert(s.start, s.end, rest...)
	}
	if err != nil {
		return &InvalidRangeError{Kind: s.Kind(), Start: s.start, End: s.end, Len: r.length, Reason: err.Error()}
	}

	s.owner = nil
	r.counts[s.Kind()]--
	return nil
}

// Query returns the spans of kind overlapping [start, end) under mode, in
// buffer order: by start, then end, then insertion order.
func (r *Registry) Query(kind Kind, start, end int, mode CollectMode) []*Span {
	t, ok := r.trees[kind]
	if !ok || start > end {
		return nil
	}

	// The tree works with closed intervals, a superset of every mode.
	candidates, _ := t.AllIntersections(start, end)
	var result []*Span
	for _, s := range candidates {
		if mode.matches(s, start, end) {
			result = append(result, s)
		}
	}

	sortSpans(result)
	return result
}

// All returns every span of kind in buffer order.
func (r *Registry) All(kind Kind) []*Span {
	return r.Query(kind, 0, r.length, CollectIntersect)
}

func sortSpans(spans []*Span) {
	slices.SortFunc(spans, func(a, b *Span) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.end, b.end); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
}
