// Package rteffect keeps paragraph level effects, such as bullet and numbered
// lists, consistent with a mutable rich text.
//
// Document is a headless attributed text: a piece table holding the text and
// a span registry holding the attribute ranges, kept in sync on every edit.
// The effect package applies paragraph effects to anything implementing its
// Buffer interface, Document included.
package rteffect

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/oligo/rteffect/buffer"
	"github.com/oligo/rteffect/paragraph"
	"github.com/oligo/rteffect/span"
)

// ErrInvalidEdit is returned for edits addressing offsets outside the text.
var ErrInvalidEdit = errors.New("invalid edit")

// Document is an attributed text. It is not safe for concurrent use.
type Document struct {
	text     *buffer.PieceTable
	spans    *span.Registry
	splitter paragraph.Splitter
}

func NewDocument(text string) *Document {
	pt := buffer.NewPieceTable([]byte(text))
	return &Document{
		text:  pt,
		spans: span.NewRegistry(pt.Len()),
	}
}

// Len returns the length of the text in runes.
func (d *Document) Len() int {
	return d.text.Len()
}

func (d *Document) Text() string {
	return d.text.Text()
}

// InsertText inserts text at the rune offset pos and moves the spans after it.
func (d *Document) InsertText(pos int, text string) error {
	if pos < 0 || pos > d.text.Len() {
		return fmt.Errorf("%w: insert at %d in text of length %d", ErrInvalidEdit, pos, d.text.Len())
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidEdit)
	}

	n := utf8.RuneCountInString(text)
	if n == 0 {
		return nil
	}

	d.text.Insert(pos, text)
	d.spans.OnInsert(pos, n)
	logger.Debug("text inserted", "pos", pos, "runes", n)
	return nil
}

// EraseText deletes the runes in [start, end) and moves or drops the spans
// overlapping the range.
func (d *Document) EraseText(start, end int) error {
	if start < 0 || end > d.text.Len() || start > end {
		return fmt.Errorf("%w: erase [%d,%d) in text of length %d", ErrInvalidEdit, start, end, d.text.Len())
	}
	if start == end {
		return nil
	}

	d.text.Erase(start, end)
	d.spans.OnErase(start, end)
	logger.Debug("text erased", "start", start, "end", end)
	return nil
}

// Paragraphs computes the paragraphs of the current text.
func (d *Document) Paragraphs() []paragraph.Paragraph {
	return d.splitter.Split(d.text.Runes())
}

// Spans gives direct access to the span registry of the document.
func (d *Document) Spans() *span.Registry {
	return d.spans
}

// Query returns the spans of kind collected for [start, end) by mode.
func (d *Document) Query(kind span.Kind, start, end int, mode span.CollectMode) []*span.Span {
	return d.spans.Query(kind, start, end, mode)
}

// Insert attaches a span of attr over [start, end).
func (d *Document) Insert(attr span.Attribute, start, end int, flags span.Flags) (*span.Span, error) {
	return d.spans.Insert(attr, start, end, flags)
}

// Remove detaches s. Removing a detached span is a no-op.
func (d *Document) Remove(s *span.Span) error {
	return d.spans.Remove(s)
}
