package pak

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecode_EntryCountLimit(t *testing.T) {
	stream := buildStream(t, []byte("ab"), []dirRecord{
		namedRecord(t, "a.dat", headerSize, 1),
		namedRecord(t, "b.dat", headerSize+1, 1),
	})
	_, err := Decode(bytes.NewReader(stream), WithReadLimits(Limits{MaxEntries: 1}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_EntrySizeLimit(t *testing.T) {
	// The limit is checked against the declared length, before any
	// allocation, so the record may lie about a huge block.
	stream := buildStream(t, nil, []dirRecord{
		namedRecord(t, "huge.dat", headerSize, 1<<31),
	})
	_, err := Decode(bytes.NewReader(stream), WithReadLimits(Limits{MaxEntrySize: 1 << 20}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_TotalSizeLimit(t *testing.T) {
	body := make([]byte, 64)
	stream := buildStream(t, body, []dirRecord{
		namedRecord(t, "a.dat", headerSize, 32),
		namedRecord(t, "b.dat", headerSize+32, 32),
	})
	_, err := Decode(bytes.NewReader(stream), WithReadLimits(Limits{MaxTotalSize: 48}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestEncode_EntryCountLimit(t *testing.T) {
	a := NewArchive(
		mustEntry(t, "a.dat", nil),
		mustEntry(t, "b.dat", nil),
	)
	var buf bytes.Buffer
	err := Encode(&buf, a, WithWriteLimits(Limits{MaxEntries: 1}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("validation failure must precede any write, got %d bytes", buf.Len())
	}
}

func TestEncode_EntrySizeLimit(t *testing.T) {
	a := NewArchive(mustEntry(t, "big.dat", make([]byte, 128)))
	var buf bytes.Buffer
	err := Encode(&buf, a, WithWriteLimits(Limits{MaxEntrySize: 64}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestEncode_UnnamedEntryBypassingSetter(t *testing.T) {
	// A name can only end up oversized by writing the field directly
	// from inside the package; encode must still refuse it.
	a := NewArchive(&Entry{name: strings.Repeat("x", NameWidth+1)})
	var buf bytes.Buffer
	err := Encode(&buf, a)
	if !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no bytes written, got %d", buf.Len())
	}
}
