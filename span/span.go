// Package span stores attribute ranges ("spans") of an attributed text and
// answers range queries on them.
//
// Spans are kept per kind in an interval tree. A span is a reference type:
// callers hold *Span values and hand them back to the registry to remove
// them. Offsets are measured in runes.
package span

import "fmt"

// Kind identifies an attribute family. Spans of different kinds never
// interact inside the registry.
type Kind uint8

const (
	Bullet Kind = iota + 1
	Number
	Indentation
)

func (k Kind) String() string {
	switch k {
	case Bullet:
		return "bullet"
	case Number:
		return "number"
	case Indentation:
		return "indentation"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Attribute defines APIs each concrete span payload should implement.
type Attribute interface {
	Kind() Kind
	// Value returns the effect value carried by the attribute, e.g. a bool
	// for on/off effects or an int for levels.
	Value() any
}

// EmptyRejecter is implemented by attributes that cannot be attached to an
// empty range.
type EmptyRejecter interface {
	RejectsEmpty() bool
}

// Flags controls how a span reacts to text inserted exactly at one of its
// boundaries. An inclusive start grows the span when text is inserted at its
// start; an inclusive end grows it when text is inserted at its end.
type Flags uint8

const (
	ExclusiveExclusive Flags = iota
	ExclusiveInclusive
	InclusiveExclusive
	InclusiveInclusive
)

func (f Flags) StartInclusive() bool {
	return f == InclusiveExclusive || f == InclusiveInclusive
}

func (f Flags) EndInclusive() bool {
	return f == ExclusiveInclusive || f == InclusiveInclusive
}

func (f Flags) String() string {
	switch f {
	case ExclusiveExclusive:
		return "exclusive-exclusive"
	case ExclusiveInclusive:
		return "exclusive-inclusive"
	case InclusiveExclusive:
		return "inclusive-exclusive"
	case InclusiveInclusive:
		return "inclusive-inclusive"
	default:
		return fmt.Sprintf("flags(%d)", uint8(f))
	}
}

// Span is an attribute attached to a contiguous range of text.
type Span struct {
	attr       Attribute
	start, end int
	flags      Flags
	// seq orders spans sharing the same range by insertion time.
	seq uint64
	// owner is the registry the span is attached to, nil once detached.
	owner *Registry
}

func (s *Span) Attribute() Attribute {
	return s.attr
}

func (s *Span) Kind() Kind {
	return s.attr.Kind()
}

// Range returns the rune range [start, end) of the span.
func (s *Span) Range() (int, int) {
	return s.start, s.end
}

func (s *Span) Flags() Flags {
	return s.flags
}

// Attached reports whether the span is still held by a registry.
func (s *Span) Attached() bool {
	return s.owner != nil
}

func (s *Span) String() string {
	return fmt.Sprintf("%s[%d,%d)=%v", s.attr.Kind(), s.start, s.end, s.attr.Value())
}
