package effect

import "gioui.org/unit"

const (
	defaultLeadingMargin  = unit.Dp(24)
	defaultIndentStep     = unit.Dp(24)
	defaultMaxIndentLevel = 8
)

type config struct {
	leadingMargin  unit.Dp
	indentStep     unit.Dp
	maxIndentLevel int
}

func defaultConfig() config {
	return config{
		leadingMargin:  defaultLeadingMargin,
		indentStep:     defaultIndentStep,
		maxIndentLevel: defaultMaxIndentLevel,
	}
}

// Option configures the effects built by NewEffects.
type Option func(*config)

// WithLeadingMargin sets the margin reserved for the bullet or number of a
// list paragraph.
func WithLeadingMargin(margin unit.Dp) Option {
	return func(c *config) {
		if margin >= 0 {
			c.leadingMargin = margin
		}
	}
}

// WithIndentStep sets the width of one indentation level.
func WithIndentStep(step unit.Dp) Option {
	return func(c *config) {
		if step >= 0 {
			c.indentStep = step
		}
	}
}

// WithMaxIndentLevel caps the indentation level. Levels are clamped to
// [0, level].
func WithMaxIndentLevel(level int) Option {
	return func(c *config) {
		if level >= 0 {
			c.maxIndentLevel = level
		}
	}
}
