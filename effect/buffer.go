// Package effect applies paragraph level effects, bullet lists, numbered
// lists and indentation, to an attributed text.
//
// Every apply call recomputes the paragraphs of the text, collects the spans
// each paragraph currently carries and rewrites them so that a paragraph
// ends up with at most one span of the effect's kind, covering exactly the
// paragraph. Spans left misaligned by text edits, such as two spans over a
// merged paragraph or one span over a split one, are repaired on the way.
package effect

import (
	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// SpanStore is the span side of an attributed text.
type SpanStore interface {
	// Query returns the spans of kind collected for [start, end) by mode.
	Query(kind span.Kind, start, end int, mode span.CollectMode) []*span.Span
	// Insert attaches a span of attr over [start, end).
	Insert(attr span.Attribute, start, end int, flags span.Flags) (*span.Span, error)
	// Remove detaches s. Removing a span that is not attached is not an
	// error.
	Remove(s *span.Span) error
}

// Buffer is an attributed text effects can be applied to.
type Buffer interface {
	SpanStore
	// Len returns the length of the text in runes.
	Len() int
	// Paragraphs returns the paragraph partition of the current text.
	Paragraphs() []paragraph.Paragraph
}

// paragraphFlags returns the flags a paragraph span is attached with. The
// span of the last paragraph grows with text typed at the end of the text,
// so a new line opened there inherits the effect.
func paragraphFlags(p paragraph.Paragraph) span.Flags {
	switch {
	case p.Last && (p.IsEmpty() || p.First):
		return span.InclusiveInclusive
	case p.Last:
		return span.ExclusiveInclusive
	default:
		return span.ExclusiveExclusive
	}
}
