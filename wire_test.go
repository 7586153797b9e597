package pak

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestWireRoundtrip(t *testing.T) {
	in := fileHeader{Magic: Magic, IndexOffset: 1234, IndexSize: 640}
	var buf bytes.Buffer
	if err := writeFileHeader(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := readFileHeader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("header mismatch: %#v vs %#v", in, out)
	}

	buf.Reset()
	recIn := dirRecord{DataOffset: 99, DataLength: 7}
	copy(recIn.Name[:], "progs/player.mdl")
	if err := writeDirRecord(&buf, recIn); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != int(recordSize) {
		t.Fatalf("record length: %d", buf.Len())
	}
	recOut := parseDirRecord(buf.Bytes())
	if !reflect.DeepEqual(recIn, recOut) {
		t.Fatalf("record mismatch: %#v vs %#v", recIn, recOut)
	}
}

func TestEncodeName(t *testing.T) {
	b, err := encodeName("maps/start.bsp", NameWidth)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != NameWidth {
		t.Fatalf("width: %d", len(b))
	}
	if !bytes.Equal(b[:14], []byte("maps/start.bsp")) {
		t.Fatalf("text: %q", b[:14])
	}
	for i := 14; i < NameWidth; i++ {
		if b[i] != 0 {
			t.Fatalf("padding byte %d is %#x", i, b[i])
		}
	}

	if _, err := encodeName(strings.Repeat("x", NameWidth), NameWidth); err != nil {
		t.Fatalf("exact-width name: %v", err)
	}
	_, err = encodeName(strings.Repeat("x", NameWidth+1), NameWidth)
	if !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
}

func TestDecodeName(t *testing.T) {
	buf := make([]byte, NameWidth)
	copy(buf, "e1m1.bsp")
	if got := decodeName(buf); got != "e1m1.bsp" {
		t.Fatalf("got %q", got)
	}

	// Garbage after the first null is padding and must be ignored.
	copy(buf[9:], "leftover junk")
	if got := decodeName(buf); got != "e1m1.bsp" {
		t.Fatalf("got %q", got)
	}

	// A field with no null uses all of it.
	full := bytes.Repeat([]byte{'z'}, NameWidth)
	if got := decodeName(full); got != strings.Repeat("z", NameWidth) {
		t.Fatalf("got %q", got)
	}
}
