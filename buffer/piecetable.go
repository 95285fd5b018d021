// Package buffer implements the text storage of an attributed document as a
// piece table addressed by rune offsets.
package buffer

import "unicode/utf8"

type bufSrc uint8

const (
	original bufSrc = iota
	modify
)

// PieceTable stores a mutable text sequence without moving the original text.
// Every edit only relinks pieces pointing into the original or the append
// only modify buffer.
type PieceTable struct {
	originalBuf *textBuffer
	modifyBuf   *textBuffer
	// Length of the text sequence in runes.
	seqLength int
	// bytes size of the text sequence.
	seqBytes int
	pieces   *pieceList

	// lastInsertEnd is the rune offset right after the last single rune
	// insertion, and lastInsertPiece the piece it extended.
	lastInsertEnd   int
	lastInsertPiece *piece
}

func NewPieceTable(text []byte) *PieceTable {
	pt := &PieceTable{
		originalBuf:   newTextBuffer(),
		modifyBuf:     newTextBuffer(),
		pieces:        newPieceList(),
		lastInsertEnd: -1,
	}
	pt.init(text)

	return pt
}

// Initialize the piece table with the text by adding the text to the original buffer,
// and create the first piece point to the buffer.
func (pt *PieceTable) init(text []byte) {
	runeCnt := pt.originalBuf.set(text)
	if runeCnt <= 0 {
		return
	}

	pt.pieces.Append(&piece{
		source:     original,
		offset:     0,
		length:     runeCnt,
		byteOff:    0,
		byteLength: len(text),
	})
	pt.seqLength = runeCnt
	pt.seqBytes = len(text)
}

func (pt *PieceTable) getBuf(source bufSrc) *textBuffer {
	if source == original {
		return pt.originalBuf
	}

	return pt.modifyBuf
}

// Insert inserts text at the logical position specified by runeIndex. runeIndex is measured by rune.
// There are 2 scenarios need to be handled:
//  1. Insert in the middle of a piece.
//  2. Insert at the boundary of two pieces.
func (pt *PieceTable) Insert(runeIndex int, text string) bool {
	if runeIndex > pt.seqLength || runeIndex < 0 {
		return false
	}
	if len(text) == 0 {
		return true
	}

	if pt.tryAppendToLastPiece(runeIndex, text) {
		return true
	}

	oldPiece, inRuneOff := pt.pieces.FindPiece(runeIndex)
	if inRuneOff == 0 {
		pt.insertAtBoundary(runeIndex, text, oldPiece)
	} else {
		pt.insertInMiddle(runeIndex, text, oldPiece, inRuneOff)
	}

	return true
}

// Check if this insert can be merged into the piece created by the previous
// insertion. Multiple characters input won't be merged.
func (pt *PieceTable) tryAppendToLastPiece(runeIndex int, text string) bool {
	if runeIndex != pt.lastInsertEnd ||
		pt.lastInsertPiece == nil ||
		utf8.RuneCountInString(text) > 1 {
		return false
	}

	// The piece must still end at the tail of the modify buffer.
	last := pt.lastInsertPiece
	if last.source != modify || last.offset+last.length != len(pt.modifyBuf.runeOffs) {
		return false
	}

	_, _, textRunes := pt.modifyBuf.append([]byte(text))
	last.length += textRunes
	last.byteLength += len(text)

	pt.seqLength += textRunes
	pt.seqBytes += len(text)
	pt.lastInsertEnd = runeIndex + textRunes
	return true
}

func (pt *PieceTable) newModifyPiece(text string) *piece {
	textRuneOff, textByteOff, textRunes := pt.modifyBuf.append([]byte(text))
	return &piece{
		source:     modify,
		offset:     textRuneOff,
		length:     textRunes,
		byteOff:    textByteOff,
		byteLength: len(text),
	}
}

func (pt *PieceTable) insertAtBoundary(runeIndex int, text string, oldPiece *piece) {
	newPiece := pt.newModifyPiece(text)

	oldPieces := &pieceRange{}
	oldPieces.AsBoundary(oldPiece)

	newPieces := &pieceRange{}
	newPieces.Append(newPiece)
	oldPieces.Swap(newPieces)

	pt.commitInsert(runeIndex, newPiece)
}

func (pt *PieceTable) insertInMiddle(runeIndex int, text string, oldPiece *piece, inRuneOff int) {
	newPiece := pt.newModifyPiece(text)

	oldPieces := &pieceRange{}
	oldPieces.Append(oldPiece)

	// split the old piece into 2 new pieces, and put the new text in between.
	newPieces := &pieceRange{}
	newPieces.Append(pt.slicePiece(oldPiece, 0, inRuneOff))
	newPieces.Append(newPiece)
	newPieces.Append(pt.slicePiece(oldPiece, inRuneOff, oldPiece.length-inRuneOff))

	oldPieces.Swap(newPieces)
	pt.commitInsert(runeIndex, newPiece)
}

func (pt *PieceTable) commitInsert(runeIndex int, newPiece *piece) {
	pt.seqLength += newPiece.length
	pt.seqBytes += newPiece.byteLength
	pt.lastInsertPiece = newPiece
	pt.lastInsertEnd = runeIndex + newPiece.length
}

// slicePiece creates a new piece covering length runes of p starting at runeOff.
func (pt *PieceTable) slicePiece(p *piece, runeOff, length int) *piece {
	buf := pt.getBuf(p.source)
	return &piece{
		source:     p.source,
		offset:     p.offset + runeOff,
		length:     length,
		byteOff:    buf.RuneOffset(p.offset + runeOff),
		byteLength: buf.bytesForRange(p.offset+runeOff, length),
	}
}

// Erase deletes the runes in [startOff, endOff). It returns false if the
// range is empty after clamping to the sequence.
func (pt *PieceTable) Erase(startOff, endOff int) bool {
	if startOff > endOff {
		startOff, endOff = endOff, startOff
	}
	if startOff < 0 {
		startOff = 0
	}
	if endOff > pt.seqLength {
		endOff = pt.seqLength
	}
	if startOff >= endOff {
		return false
	}

	startPiece, inRuneOff := pt.pieces.FindPiece(startOff)

	oldPieces := &pieceRange{}
	newPieces := &pieceRange{}
	bytesErased := 0

	// Keep the left part of the start piece if the erase begins in its middle.
	if inRuneOff > 0 {
		left := pt.slicePiece(startPiece, 0, inRuneOff)
		newPieces.Append(left)
	}

	offset := startOff - inRuneOff
	n := startPiece
	for ; n != pt.pieces.tail && offset < endOff; n = n.next {
		oldPieces.Append(n)
		pieceEnd := offset + n.length

		// erased part of this piece in piece local runes.
		from := max(startOff-offset, 0)
		to := min(endOff-offset, n.length)
		bytesErased += pt.getBuf(n.source).bytesForRange(n.offset+from, to-from)

		if pieceEnd > endOff {
			// The erase stops in the middle of the piece, keep its right part.
			right := pt.slicePiece(n, endOff-offset, pieceEnd-endOff)
			newPieces.Append(right)
		}

		offset = pieceEnd
	}

	// Nothing survived: unlink the erased pieces and leave an empty gap before n.
	if newPieces.first == nil {
		newPieces.AsBoundary(n)
	}
	oldPieces.Swap(newPieces)

	pt.seqLength -= endOff - startOff
	pt.seqBytes -= bytesErased
	pt.lastInsertPiece = nil
	pt.lastInsertEnd = -1
	return true
}

// Len returns the length of the document in runes.
func (pt *PieceTable) Len() int {
	return pt.seqLength
}

// Size returns the total size of the document in bytes.
func (pt *PieceTable) Size() int64 {
	return int64(pt.seqBytes)
}
