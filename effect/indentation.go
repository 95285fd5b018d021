package effect

import (
	"gioui.org/unit"

	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// IndentationEffect indents paragraphs by whole levels. It combines freely
// with list effects.
type IndentationEffect struct {
	engine
	step     unit.Dp
	maxLevel int
}

// Apply changes the level of the selected paragraphs by delta, clamped to
// [0, max level]. A nil delta keeps every level and only realigns the spans
// with the paragraphs. Level 0 leaves a paragraph without span.
func (e *IndentationEffect) Apply(buf Buffer, sel *paragraph.Selection, delta *int) error {
	return e.apply(buf, sel, func(p paragraph.Paragraph, existing []*span.Span, selected bool) span.Attribute {
		level := levelOf(existing)
		if selected && delta != nil {
			level = min(max(level+*delta, 0), e.maxLevel)
		}
		if level == 0 {
			return nil
		}
		return IndentationSpan{Level: level, Step: e.step}
	})
}

// Level returns the indentation level of p.
func (e *IndentationEffect) Level(store SpanStore, p paragraph.Paragraph) int {
	return levelOf(collect(store, span.Indentation, p))
}

// levelOf reads the level from the first span. After a merge it is the span
// of the leading paragraph.
func levelOf(spans []*span.Span) int {
	for _, s := range spans {
		if level, ok := s.Attribute().Value().(int); ok {
			return max(level, 0)
		}
	}
	return 0
}
