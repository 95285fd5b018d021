package paragraph

import (
	"errors"
	"fmt"
)

// ErrInconsistentModel is matched by every *InconsistentModelError.
var ErrInconsistentModel = errors.New("inconsistent paragraph model")

// InconsistentModelError reports paragraphs which do not partition the text.
type InconsistentModelError struct {
	// Index of the offending paragraph, -1 when the sequence as a whole is wrong.
	Index  int
	Reason string
}

func (e *InconsistentModelError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("inconsistent paragraph model: %s", e.Reason)
	}
	return fmt.Sprintf("inconsistent paragraph model at paragraph %d: %s", e.Index, e.Reason)
}

func (e *InconsistentModelError) Is(target error) bool {
	return target == ErrInconsistentModel
}

// Validate checks that paras partition [0, length) in order, without gaps or
// overlaps, and that the First and Last flags are set on the right
// paragraphs only.
func Validate(paras []Paragraph, length int) error {
	if len(paras) == 0 {
		return &InconsistentModelError{Index: -1, Reason: "no paragraphs"}
	}

	prevEnd := 0
	for i, p := range paras {
		switch {
		case p.Start > p.End:
			return &InconsistentModelError{Index: i, Reason: fmt.Sprintf("start %d after end %d", p.Start, p.End)}
		case p.Start > prevEnd:
			return &InconsistentModelError{Index: i, Reason: fmt.Sprintf("gap [%d,%d)", prevEnd, p.Start)}
		case p.Start < prevEnd:
			return &InconsistentModelError{Index: i, Reason: fmt.Sprintf("overlap [%d,%d)", p.Start, prevEnd)}
		case p.IsEmpty() && i != len(paras)-1:
			return &InconsistentModelError{Index: i, Reason: "empty paragraph before the end"}
		case p.First != (i == 0):
			return &InconsistentModelError{Index: i, Reason: "wrong first flag"}
		case p.Last != (i == len(paras)-1):
			return &InconsistentModelError{Index: i, Reason: "wrong last flag"}
		}
		prevEnd = p.End
	}

	if prevEnd != length {
		return &InconsistentModelError{Index: -1, Reason: fmt.Sprintf("paragraphs end at %d, text length is %d", prevEnd, length)}
	}
	return nil
}
