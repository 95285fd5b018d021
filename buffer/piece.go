package buffer

// piece is a single piece of text in the piece table.
// We use doubly linked list to represent a piece table here.
type piece struct {
	next *piece
	prev *piece

	// offset is the rune offset in the buffer.
	offset int
	// length is the rune length of text the piece covers.
	length int
	// byte offset in the buffer.
	byteOff int
	// byte length of the text.
	byteLength int
	// source specifies which buffer this piece point to.
	source bufSrc
}

// Use sentinel nodes to be used as head and tail, as pointed out in https://www.catch22.net/tuts/neatpad/piece-chains/.
type pieceList struct {
	head, tail *piece
}

// A piece-range represents the range of pieces affected by an operation on the sequence.
// Two kinds range exist here:
//  1. Normal range of pieces with the first and last all effective pieces.
//  2. Boundary range that has no piece in the range. The first and last pointer points
//     to the encompassing pieces in the sequence.
type pieceRange struct {
	first    *piece
	last     *piece
	boundary bool
}

func newPieceList() *pieceList {
	p := &pieceList{
		head: &piece{},
		tail: &piece{},
	}
	p.head.next = p.tail
	p.tail.prev = p.head

	return p
}

func (pl *pieceList) Head() *piece {
	return pl.head.next
}

func (pl *pieceList) InsertBefore(existing *piece, newPiece *piece) {
	newPiece.next = existing
	newPiece.prev = existing.prev
	existing.prev.next = newPiece
	existing.prev = newPiece
}

func (pl *pieceList) Append(newPiece *piece) {
	pl.InsertBefore(pl.tail, newPiece)
}

// FindPiece finds a piece by a runeIndex in the document, returning the found
// piece and the rune offset inside it. If runeIndex reaches the end of the
// chain, the sentinel tail piece is returned.
func (pl *pieceList) FindPiece(runeIndex int) (*piece, int) {
	if runeIndex <= 0 {
		return pl.head.next, 0
	}

	pieceOff := 0
	for n := pl.head.next; n != pl.tail; n = n.next {
		nextPos := pieceOff + n.length
		if runeIndex < nextPos {
			return n, runeIndex - pieceOff
		}
		pieceOff = nextPos
	}

	return pl.tail, 0
}

// Length returns total pieces of the chain
func (pl *pieceList) Length() int {
	t := 0
	for n := pl.head.next; n != pl.tail; n = n.next {
		t++
	}

	return t
}

// AsBoundary turns the pieceRange to a boundary range by linking its first to the prev node of target,
// and the last node as target.
func (p *pieceRange) AsBoundary(target *piece) {
	p.first = target.prev
	p.last = target
	p.boundary = true
}

func (p *pieceRange) Append(piece *piece) {
	if piece == nil {
		return
	}

	if p.first == nil {
		p.first = piece
	} else {
		p.last.next = piece
		piece.prev = p.last
	}

	p.last = piece
	p.boundary = false
}

// Swap replaces the pieces of p with the ones from dest. p must be linked in the
// main list.
func (p *pieceRange) Swap(dest *pieceRange) {
	if p.boundary {
		if !dest.boundary {
			p.first.next = dest.first
			p.last.prev = dest.last
			dest.first.prev = p.first
			dest.last.next = p.last
		}
		return
	}

	if dest.boundary {
		p.first.prev.next = p.last.next
		p.last.next.prev = p.first.prev
	} else {
		p.first.prev.next = dest.first
		p.last.next.prev = dest.last
		dest.first.prev = p.first.prev
		dest.last.next = p.last.next
	}
}
