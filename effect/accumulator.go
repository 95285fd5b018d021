package effect

import (
	"fmt"

	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// entry is one staged change. It either removes an existing span or inserts
// a new span of attr over the paragraph.
type entry struct {
	span   *span.Span
	attr   span.Attribute
	para   paragraph.Paragraph
	remove bool
}

type rangeKey struct {
	kind       span.Kind
	start, end int
}

// Stats reports what a commit changed.
type Stats struct {
	Removed  int
	Inserted int
}

// Accumulator collects the span changes of one apply call before they are
// written to the buffer in a single commit. Removals are always applied
// before insertions, so the spans removed and the spans inserted by a batch
// never coexist.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	removals   []entry
	insertions []entry
	removing   map[*span.Span]struct{}
	inserting  map[rangeKey]struct{}
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		removing:  make(map[*span.Span]struct{}),
		inserting: make(map[rangeKey]struct{}),
	}
}

// Remove stages the removal of s, found while processing p. Staging the same
// span twice has no effect.
func (a *Accumulator) Remove(s *span.Span, p paragraph.Paragraph) {
	if s == nil {
		return
	}
	if _, ok := a.removing[s]; ok {
		return
	}
	a.removing[s] = struct{}{}
	a.removals = append(a.removals, entry{span: s, para: p, remove: true})
}

// Add stages a new span of attr covering p. A second insertion of the same
// kind over the same range is ignored.
func (a *Accumulator) Add(attr span.Attribute, p paragraph.Paragraph) {
	if attr == nil {
		return
	}
	key := rangeKey{kind: attr.Kind(), start: p.Start, end: p.End}
	if _, ok := a.inserting[key]; ok {
		return
	}
	a.inserting[key] = struct{}{}
	a.insertions = append(a.insertions, entry{attr: attr, para: p})
}

// Len returns the number of staged changes.
func (a *Accumulator) Len() int {
	return len(a.removals) + len(a.insertions)
}

// Clear drops every staged change.
func (a *Accumulator) Clear() {
	a.removals = a.removals[:0]
	a.insertions = a.insertions[:0]
	clear(a.removing)
	clear(a.inserting)
}

// Commit writes the staged changes to store, removals first and then
// insertions, each in staging order. The first store error aborts the rest
// of the batch; changes already written stay. The accumulator is empty when
// Commit returns.
func (a *Accumulator) Commit(store SpanStore) (Stats, error) {
	defer a.Clear()

	var stats Stats
	for _, e := range a.removals {
		attached := e.span.Attached()
		if err := store.Remove(e.span); err != nil {
			return stats, fmt.Errorf("remove %s from paragraph %s: %w", e.span, e.para, err)
		}
		if attached {
			stats.Removed++
		}
	}

	for _, e := range a.insertions {
		_, err := store.Insert(e.attr, e.para.Start, e.para.End, paragraphFlags(e.para))
		if err != nil {
			return stats, fmt.Errorf("insert %s span over paragraph %s: %w", e.attr.Kind(), e.para, err)
		}
		stats.Inserted++
	}

	return stats, nil
}
