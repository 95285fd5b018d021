package effect

import (
	"gioui.org/unit"
	"golang.org/x/image/math/fixed"

	"github.com/oligo/rteffect/span"
)

// BulletSpan marks a paragraph of a bullet list.
type BulletSpan struct {
	// Margin is the room left for the bullet.
	Margin unit.Dp
	// Empty, First and Last describe the paragraph when the span was
	// attached. A renderer uses them to draw the bullet of an empty line or
	// to add list spacing.
	Empty, First, Last bool
}

func (BulletSpan) Kind() span.Kind {
	return span.Bullet
}

func (BulletSpan) Value() any {
	return true
}

// LeadingMargin returns the margin in fixed point pixels.
func (s BulletSpan) LeadingMargin(m unit.Metric) fixed.Int26_6 {
	return fixed.I(m.Dp(s.Margin))
}

// NumberSpan marks a paragraph of a numbered list.
type NumberSpan struct {
	// Nr is the 1 based position of the paragraph in its list.
	Nr                 int
	Margin             unit.Dp
	Empty, First, Last bool
}

func (NumberSpan) Kind() span.Kind {
	return span.Number
}

func (NumberSpan) Value() any {
	return true
}

// LeadingMargin returns the margin in fixed point pixels.
func (s NumberSpan) LeadingMargin(m unit.Metric) fixed.Int26_6 {
	return fixed.I(m.Dp(s.Margin))
}

// IndentationSpan shifts a paragraph Level steps to the end of the line.
type IndentationSpan struct {
	Level int
	Step  unit.Dp
}

func (IndentationSpan) Kind() span.Kind {
	return span.Indentation
}

func (s IndentationSpan) Value() any {
	return s.Level
}

func (s IndentationSpan) LeadingMargin(m unit.Metric) fixed.Int26_6 {
	return fixed.I(m.Dp(s.Step) * s.Level)
}
