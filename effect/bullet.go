package effect

import (
	"gioui.org/unit"

	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// BulletEffect turns paragraphs into bullet list items.
type BulletEffect struct {
	engine
	margin unit.Dp
}

// Apply switches the bullet on the paragraphs selected by sel on or off.
// A nil sel selects every paragraph. A nil enable keeps the state of every
// paragraph and only realigns the bullet spans with the paragraphs. Turning
// the bullet on for a paragraph removes its numbering. The numbered
// paragraphs after it keep their old list positions until numbering is
// applied again, for instance through Effects.Normalize.
func (b *BulletEffect) Apply(buf Buffer, sel *paragraph.Selection, enable *bool) error {
	return b.applySwitch(buf, sel, &switchState{value: enable})
}

// Toggle switches the bullet of the selected paragraphs to the opposite of
// the state of the first one.
func (b *BulletEffect) Toggle(buf Buffer, sel *paragraph.Selection) error {
	return b.applySwitch(buf, sel, &switchState{toggle: true})
}

func (b *BulletEffect) applySwitch(buf Buffer, sel *paragraph.Selection, state *switchState) error {
	return b.apply(buf, sel, func(p paragraph.Paragraph, existing []*span.Span, selected bool) span.Attribute {
		if !state.resolve(len(existing) > 0, selected) {
			return nil
		}
		return BulletSpan{Margin: b.margin, Empty: p.IsEmpty(), First: p.First, Last: p.Last}
	})
}
