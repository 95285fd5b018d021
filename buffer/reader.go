package buffer

import (
	"io"
)

// ReadAt implements [io.ReaderAt] over the byte representation of the
// sequence.
func (pt *PieceTable) ReadAt(p []byte, offset int64) (total int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if offset >= int64(pt.seqBytes) {
		return 0, io.EOF
	}

	expected := len(p)
	var bytes int64
	for n := pt.pieces.Head(); n != pt.pieces.tail; n = n.next {
		bytes += int64(n.byteLength)

		if bytes > offset {
			fragment := pt.getBuf(n.source).getTextByRange(
				n.byteOff+n.byteLength-int(bytes-offset), // calculate the offset in the source buffer.
				int(bytes-offset))

			n := copy(p, fragment)
			p = p[n:]
			total += n
			offset += int64(n)

			if total >= expected {
				break
			}
		}
	}

	if total < expected {
		err = io.EOF
	}

	return
}

// Text returns the whole text sequence.
func (pt *PieceTable) Text() string {
	buf := make([]byte, pt.Size())
	n, _ := pt.ReadAt(buf, 0)
	return string(buf[:n])
}

// Runes returns the text sequence decoded as runes, which is the unit all
// offsets of the table are measured in.
func (pt *PieceTable) Runes() []rune {
	return []rune(pt.Text())
}
