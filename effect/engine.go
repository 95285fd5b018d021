package effect

import (
	"fmt"
	"sync"

	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// decideFunc returns the attribute a paragraph should carry after an apply,
// or nil if it should carry none. existing holds the spans of the effect's
// kind currently collected for p, in buffer order.
type decideFunc func(p paragraph.Paragraph, existing []*span.Span, selected bool) span.Attribute

// engine carries out the apply cycle shared by all paragraph effects.
type engine struct {
	kind    span.Kind
	effects *Effects
	mu      sync.Mutex
}

func (e *engine) Kind() span.Kind {
	return e.kind
}

// apply recomputes the spans of e.kind over every paragraph of buf. Each
// existing span is staged for removal, and the attribute returned by decide
// is staged for insertion together with the removal of the spans of every
// kind e.kind excludes. The batch is then committed at once.
func (e *engine) apply(buf Buffer, sel *paragraph.Selection, decide decideFunc) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	paras := buf.Paragraphs()
	if err := paragraph.Validate(paras, buf.Len()); err != nil {
		return fmt.Errorf("apply %s: %w", e.kind, err)
	}

	acc := NewAccumulator()
	for _, p := range paras {
		existing := collect(buf, e.kind, p)
		for _, s := range existing {
			acc.Remove(s, p)
		}

		attr := decide(p, existing, p.IsSelected(sel))
		if attr == nil {
			continue
		}
		acc.Add(attr, p)
		e.removeExcluded(buf, p, acc)
	}

	staged := acc.Len()
	stats, err := acc.Commit(buf)
	if err != nil {
		logger.Warn("commit aborted", "kind", e.kind, "staged", staged, "removed", stats.Removed, "inserted", stats.Inserted, "error", err)
		return fmt.Errorf("apply %s: %w", e.kind, err)
	}

	logger.Debug("effect applied", "kind", e.kind, "paragraphs", len(paras), "removed", stats.Removed, "inserted", stats.Inserted)
	return nil
}

func (e *engine) removeExcluded(buf Buffer, p paragraph.Paragraph, acc *Accumulator) {
	if e.effects == nil {
		return
	}
	for _, kind := range Excludes(e.kind) {
		if other, ok := e.effects.Lookup(kind); ok {
			other.FindSpansToRemove(buf, p, acc)
		}
	}
}

// FindSpansToRemove stages the removal of the spans of e's kind found on p.
// It only reads the store and does not take the apply lock, so an effect
// applying a conflicting kind can call it.
func (e *engine) FindSpansToRemove(store SpanStore, p paragraph.Paragraph, acc *Accumulator) {
	for _, s := range collect(store, e.kind, p) {
		acc.Remove(s, p)
	}
}

// HasEffect reports whether p currently carries a span of e's kind.
func (e *engine) HasEffect(store SpanStore, p paragraph.Paragraph) bool {
	return len(collect(store, e.kind, p)) > 0
}

// collect returns the spans of kind owned by p: the spans a flags query
// collects for the paragraph, plus, for the last paragraph, the zero length
// spans left at the end of the text. Only the last paragraph may own those,
// the paragraph before an empty last paragraph must not.
func collect(store SpanStore, kind span.Kind, p paragraph.Paragraph) []*span.Span {
	spans := store.Query(kind, p.Start, p.End, span.CollectFlags)
	if p.Last && !p.IsEmpty() {
		spans = append(spans, store.Query(kind, p.End, p.End, span.CollectExact)...)
	}
	return spans
}

// switchState resolves the target state of an on/off effect for one
// paragraph.
type switchState struct {
	// value is the state selected paragraphs are set to. nil keeps the
	// current state of every paragraph.
	value *bool
	// toggle derives value from the first selected paragraph: the effect is
	// switched on if that paragraph does not carry it and off otherwise.
	toggle bool
}

func (s *switchState) resolve(has, selected bool) bool {
	if !selected {
		return has
	}
	if s.toggle && s.value == nil {
		on := !has
		s.value = &on
	}
	if s.value == nil {
		return has
	}
	return *s.value
}
