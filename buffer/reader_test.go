package buffer

import (
	"io"
	"testing"
)

func TestTextAcrossPieces(t *testing.T) {
	src := NewPieceTable([]byte("hello"))
	src.Insert(5, ",world.")
	src.Insert(0, "你好 ")
	src.Erase(8, 9)

	if src.Size() != int64(len("你好 helloworld.")) {
		t.Errorf("unexpected byte size %d", src.Size())
	}
	if got := src.Text(); got != "你好 helloworld." {
		t.Errorf("got %q", got)
	}
	if got := string(src.Runes()); got != "你好 helloworld." {
		t.Errorf("got %q", got)
	}

	empty := NewPieceTable(nil)
	if empty.Text() != "" || len(empty.Runes()) != 0 {
		t.Errorf("empty table should read as empty text")
	}
}

func TestReadAt(t *testing.T) {
	src := NewPieceTable(nil)
	src.Insert(0, "hello,world.")

	if src.Len() != 12 {
		t.Fail()
	}

	buf := make([]byte, 5)
	n, err := src.ReadAt(buf, 0)
	if err != nil {
		t.Fail()
	}

	if n != 5 || string(buf) != "hello" {
		t.Fail()
	}

	n, err = src.ReadAt(buf, 10)
	if err != io.EOF || n != 2 || string(buf[:n]) != "d." {
		t.Errorf("got %q, %v", buf[:n], err)
	}

	if string(src.Runes()) != "hello,world." {
		t.Fail()
	}
}
