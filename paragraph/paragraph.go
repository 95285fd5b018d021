// Package paragraph splits text into the paragraphs paragraph level effects
// are applied to.
package paragraph

import "fmt"

// Paragraph is a half open rune range [Start, End) of the text. The line
// break closing a paragraph belongs to it, so only the last paragraph of a
// text can be empty.
type Paragraph struct {
	Start int
	End   int
	First bool
	Last  bool
}

func (p Paragraph) IsEmpty() bool {
	return p.Start == p.End
}

func (p Paragraph) Len() int {
	return p.End - p.Start
}

func (p Paragraph) String() string {
	return fmt.Sprintf("[%d,%d) first=%t last=%t", p.Start, p.End, p.First, p.Last)
}

// Selection is a rune range of the text. A nil *Selection stands for the
// whole document without any filter.
type Selection struct {
	Start int
	End   int
}

func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// IsSelected reports whether the paragraph is affected by sel. A nil
// selection selects every paragraph while an empty selection selects none.
func (p Paragraph) IsSelected(sel *Selection) bool {
	if sel == nil {
		return true
	}
	if sel.IsEmpty() {
		return false
	}

	start, end := sel.Start, sel.End
	if start > end {
		start, end = end, start
	}

	if p.IsEmpty() {
		return start <= p.Start && p.Start <= end
	}
	return p.Start < end && start < p.End
}

// Expand grows sel, possibly a caret, to the boundaries of the paragraphs it
// touches. A caret selects the paragraph containing it. The result is empty,
// and so selects nothing, when sel only touches the empty last paragraph.
func Expand(paras []Paragraph, sel Selection) Selection {
	start, end := sel.Start, sel.End
	if start > end {
		start, end = end, start
	}

	out := Selection{Start: start, End: end}
	found := false
	for _, p := range paras {
		if !p.touches(start, end) {
			continue
		}
		if !found {
			out.Start = p.Start
			found = true
		}
		out.End = p.End
	}
	return out
}

// touches reports whether the closed range [start, end] lies at least partly
// in the paragraph. A caret at the end of a non-last paragraph belongs to the
// next one.
func (p Paragraph) touches(start, end int) bool {
	if start == end {
		return (p.Start <= start && start < p.End) || (p.Last && start == p.End)
	}
	if p.IsEmpty() {
		return start <= p.Start && p.Start <= end
	}
	return p.Start < end && start < p.End
}
