package effect

import (
	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// Effect is the part of a paragraph effect other effects rely on to resolve
// conflicts.
type Effect interface {
	Kind() span.Kind
	// FindSpansToRemove stages the removal of the effect's spans on p.
	FindSpansToRemove(store SpanStore, p paragraph.Paragraph, acc *Accumulator)
}

// exclusions lists, per kind, the kinds a paragraph cannot carry together
// with it.
var exclusions = map[span.Kind][]span.Kind{
	span.Bullet: {span.Number},
	span.Number: {span.Bullet},
}

// Excludes returns the kinds that are removed from a paragraph when kind is
// applied to it.
func Excludes(kind span.Kind) []span.Kind {
	return exclusions[kind]
}

// Effects holds one instance of every paragraph effect. The effects of one
// set see each other when they resolve conflicts.
type Effects struct {
	Bullet      *BulletEffect
	Number      *NumberEffect
	Indentation *IndentationEffect

	byKind map[span.Kind]Effect
}

func NewEffects(opts ...Option) *Effects {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Effects{}
	e.Bullet = &BulletEffect{
		engine: engine{kind: span.Bullet, effects: e},
		margin: cfg.leadingMargin,
	}
	e.Number = &NumberEffect{
		engine: engine{kind: span.Number, effects: e},
		margin: cfg.leadingMargin,
	}
	e.Indentation = &IndentationEffect{
		engine:   engine{kind: span.Indentation, effects: e},
		step:     cfg.indentStep,
		maxLevel: cfg.maxIndentLevel,
	}

	e.byKind = map[span.Kind]Effect{
		span.Bullet:      e.Bullet,
		span.Number:      e.Number,
		span.Indentation: e.Indentation,
	}
	return e
}

// Lookup returns the effect handling kind.
func (e *Effects) Lookup(kind span.Kind) (Effect, bool) {
	effect, ok := e.byKind[kind]
	return effect, ok
}

// Normalize realigns the spans of every effect with the current paragraphs
// without changing any paragraph's state. Hosts call it after text edits.
func (e *Effects) Normalize(buf Buffer) error {
	if err := e.Bullet.Apply(buf, nil, nil); err != nil {
		return err
	}
	if err := e.Number.Apply(buf, nil, nil); err != nil {
		return err
	}
	return e.Indentation.Apply(buf, nil, nil)
}
