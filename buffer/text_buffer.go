package buffer

import "unicode/utf8"

// textBuffer is an append only byte store addressed by runes. runeOffs keeps
// the byte offset of every rune so piece arithmetic never rescans text.
type textBuffer struct {
	data     []byte
	runeOffs []int
}

func newTextBuffer() *textBuffer {
	return &textBuffer{}
}

// set replaces the content of the buffer, returning the rune count.
func (b *textBuffer) set(text []byte) int {
	b.data = b.data[:0]
	b.runeOffs = b.runeOffs[:0]
	_, _, n := b.append(text)
	return n
}

// append adds text to the end of the buffer. It returns the rune offset and
// byte offset of the appended text and its length in runes.
func (b *textBuffer) append(text []byte) (runeOff, byteOff, runeCnt int) {
	runeOff = len(b.runeOffs)
	byteOff = len(b.data)

	for i := 0; i < len(text); {
		_, size := utf8.DecodeRune(text[i:])
		b.runeOffs = append(b.runeOffs, byteOff+i)
		i += size
		runeCnt++
	}
	b.data = append(b.data, text...)
	return
}

// RuneOffset returns the byte offset of the rune at runeIndex.
func (b *textBuffer) RuneOffset(runeIndex int) int {
	if runeIndex >= len(b.runeOffs) {
		return len(b.data)
	}
	return b.runeOffs[runeIndex]
}

// bytesForRange returns the byte length of runeCnt runes starting at runeOff.
func (b *textBuffer) bytesForRange(runeOff, runeCnt int) int {
	return b.RuneOffset(runeOff+runeCnt) - b.RuneOffset(runeOff)
}

func (b *textBuffer) getTextByRange(byteOff, length int) []byte {
	return b.data[byteOff : byteOff+length]
}
