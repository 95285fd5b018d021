package span

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is matched by every *InvalidRangeError.
var ErrInvalidRange = errors.New("invalid span range")

// InvalidRangeError is returned when a span is attached over a malformed or
// out of bounds range.
type InvalidRangeError struct {
	Kind       Kind
	Start, End int
	// Len is the text length at the time of the call.
	Len    int
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid %s span range [%d,%d) for text of length %d: %s",
		e.Kind, e.Start, e.End, e.Len, e.Reason)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
