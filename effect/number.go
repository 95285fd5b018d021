package effect

import (
	"gioui.org/unit"

	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// NumberEffect turns paragraphs into numbered list items. Consecutive
// numbered paragraphs form one list, counted from 1.
type NumberEffect struct {
	engine
	margin unit.Dp
}

// Apply switches numbering on the paragraphs selected by sel on or off, with
// the same rules as BulletEffect.Apply. Every numbered paragraph of the
// document is renumbered. Turning numbering on for a paragraph removes its
// bullet.
func (n *NumberEffect) Apply(buf Buffer, sel *paragraph.Selection, enable *bool) error {
	return n.applySwitch(buf, sel, &switchState{value: enable})
}

// Toggle switches numbering of the selected paragraphs to the opposite of
// the state of the first one.
func (n *NumberEffect) Toggle(buf Buffer, sel *paragraph.Selection) error {
	return n.applySwitch(buf, sel, &switchState{toggle: true})
}

func (n *NumberEffect) applySwitch(buf Buffer, sel *paragraph.Selection, state *switchState) error {
	nr := 0
	return n.apply(buf, sel, func(p paragraph.Paragraph, existing []*span.Span, selected bool) span.Attribute {
		if !state.resolve(len(existing) > 0, selected) {
			// a paragraph without numbering ends the list.
			nr = 0
			return nil
		}
		nr++
		return NumberSpan{Nr: nr, Margin: n.margin, Empty: p.IsEmpty(), First: p.First, Last: p.Last}
	})
}

// Number returns the list position of p, or 0 if p is not numbered. The
// position is the one computed by the last numbering apply; a bullet applied
// since then inside the list does not shift it.
func (n *NumberEffect) Number(store SpanStore, p paragraph.Paragraph) int {
	for _, s := range collect(store, span.Number, p) {
		if attr, ok := s.Attribute().(NumberSpan); ok {
			return attr.Nr
		}
	}
	return 0
}
