package paragraph

import (
	"github.com/go-text/typesetting/segmenter"
)

// Splitter computes paragraphs from text. Paragraph boundaries are the
// mandatory line breaks of the Unicode line breaking algorithm (LF, CR, CRLF,
// VT, FF, NEL, LS and PS). A Splitter reuses its segmentation buffers between
// calls and is not safe for concurrent use.
type Splitter struct {
	seg segmenter.Segmenter
}

// Compute splits text into paragraphs using a temporary Splitter.
func Compute(text []rune) []Paragraph {
	var s Splitter
	return s.Split(text)
}

// Split returns the paragraphs of text in order. The result always holds at
// least one paragraph: an empty text, or a text ending with a line break,
// ends with an empty paragraph.
func (s *Splitter) Split(text []rune) []Paragraph {
	if len(text) == 0 {
		return []Paragraph{{First: true, Last: true}}
	}

	var paras []Paragraph
	start := 0

	s.seg.Init(text)
	iter := s.seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		if !line.IsMandatoryBreak || len(line.Text) == 0 {
			continue
		}
		if !isHardBreak(line.Text[len(line.Text)-1]) {
			// end of text without a trailing line break.
			continue
		}

		end := line.Offset + len(line.Text)
		paras = append(paras, Paragraph{Start: start, End: end})
		start = end
	}

	paras = append(paras, Paragraph{Start: start, End: len(text)})
	paras[0].First = true
	paras[len(paras)-1].Last = true
	return paras
}

func isHardBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
