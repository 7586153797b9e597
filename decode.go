package pak

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Decode reads a PACK archive from r.
//
// The decoding process:
//  1. Reads and validates the 12-byte header
//  2. Seeks to the directory and reads it whole
//  3. Decodes each 64-byte directory record
//  4. Seeks to and reads each entry's data block, in directory order
//
// Decode is all-or-nothing: any failure yields no Archive. It returns
// ErrFormat if the magic is wrong or the directory size is not a
// multiple of 64, ErrUnexpectedEOF if the stream ends before a declared
// region is fully available, and ErrLimitExceeded if the directory
// declares more entries or larger data than the configured [Limits]
// allow (see WithReadLimits).
func Decode(r io.ReadSeeker, opts ...ReadOption) (*Archive, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	return decode(r, cfg, func(buf []byte) error {
		_, err := io.ReadFull(r, buf)
		return err
	})
}

// DecodeContext is Decode with cooperative cancellation: entry data is
// transferred in fixed-size blocks and ctx is checked between blocks.
// On cancellation it returns ctx.Err() and no Archive.
func DecodeContext(ctx context.Context, r io.ReadSeeker, opts ...ReadOption) (*Archive, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decode(r, cfg, func(buf []byte) error {
		return readChunks(ctx, r, buf, cfg.chunkSize)
	})
}

// decode runs the linear decode state machine. fill reads exactly
// len(buf) bytes from the stream's current position; the two public
// entry points differ only in how fill transfers bytes.
func decode(r io.ReadSeeker, cfg readConfig, fill func(buf []byte) error) (*Archive, error) {
	h, err := readFileHeader(r)
	if err != nil {
		return nil, mapEOF(err)
	}
	if h.Magic != Magic {
		return nil, ErrFormat
	}
	if h.IndexSize%recordSize != 0 {
		return nil, fmt.Errorf("%w: directory size %d not a multiple of %d", ErrFormat, h.IndexSize, recordSize)
	}
	count := int(h.IndexSize / recordSize)
	if count > cfg.limits.MaxEntries {
		return nil, fmt.Errorf("%w: %d directory records", ErrLimitExceeded, count)
	}

	if _, err := r.Seek(int64(h.IndexOffset), io.SeekStart); err != nil {
		return nil, err
	}
	dir := make([]byte, h.IndexSize)
	if err := fill(dir); err != nil {
		return nil, mapEOF(err)
	}

	records := make([]dirRecord, count)
	var total uint64
	for i := range records {
		records[i] = parseDirRecord(dir[uint32(i)*recordSize : uint32(i+1)*recordSize])
		if records[i].DataLength > cfg.limits.MaxEntrySize {
			return nil, fmt.Errorf("%w: record %d declares %d bytes", ErrLimitExceeded, i, records[i].DataLength)
		}
		total += uint64(records[i].DataLength)
	}
	if total > cfg.limits.MaxTotalSize {
		return nil, fmt.Errorf("%w: directory declares %d data bytes", ErrLimitExceeded, total)
	}

	// Directory order, not body layout order, determines entry order.
	entries := make([]*Entry, count)
	for i, rec := range records {
		if _, err := r.Seek(int64(rec.DataOffset), io.SeekStart); err != nil {
			return nil, err
		}
		data := make([]byte, rec.DataLength)
		if err := fill(data); err != nil {
			return nil, mapEOF(err)
		}
		// Decoded names are at most NameWidth bytes by construction,
		// so the entry is built directly.
		entries[i] = &Entry{name: decodeName(rec.Name[:]), data: data}
	}
	return NewArchive(entries...), nil
}

func mapEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEOF
	}
	return err
}
