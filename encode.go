package pak

import (
	"context"
	"io"
)

// Encode writes a to w in the PACK v1 layout.
//
// The archive is validated before any byte is written: every name must
// fit the 56-byte field, and the layout must stay within uint32
// addressing and the configured [Limits]. Encoding then writes the
// 12-byte header, the entry data blocks in archive order while
// recording each block's absolute offset, and finally the directory
// records in the same order.
//
// Encode returns ErrNameTooLong, ErrValidation, or ErrLimitExceeded
// from validation, or the writer's error if a write fails. A failed
// encode leaves w holding an incomplete stream; callers that need
// atomicity should write to a temporary file and rename (see
// [WriteFile]).
func Encode(w io.Writer, a *Archive, opts ...WriteOption) error {
	cfg := writeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	return encode(w, a, cfg.limits, func(buf []byte) error {
		_, err := w.Write(buf)
		return err
	})
}

// EncodeContext is Encode with cooperative cancellation: entry data is
// transferred in fixed-size blocks and ctx is checked between blocks.
// On cancellation it returns ctx.Err(); the bytes already written are
// not a valid PACK stream.
func EncodeContext(ctx context.Context, w io.Writer, a *Archive, opts ...WriteOption) error {
	cfg := writeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	if err := ctx.Err(); err != nil {
		return err
	}
	return encode(w, a, cfg.limits, func(buf []byte) error {
		return writeChunks(ctx, w, buf, cfg.chunkSize)
	})
}

// encode performs the two-pass layout. emit writes entry data blocks;
// the two public entry points differ only in how emit transfers bytes.
func encode(w io.Writer, a *Archive, limits Limits, emit func(buf []byte) error) error {
	if err := validateArchive(a, limits); err != nil {
		return err
	}

	total := a.TotalSize()
	h := fileHeader{
		Magic:       Magic,
		IndexOffset: headerSize + uint32(total),
		IndexSize:   uint32(len(a.entries)) * recordSize,
	}
	if err := writeFileHeader(w, h); err != nil {
		return err
	}

	// Pass 1: data blocks, recording each absolute offset. An empty
	// entry writes nothing but still gets the current offset.
	offsets := make([]uint32, len(a.entries))
	pos := headerSize
	for i, e := range a.entries {
		offsets[i] = pos
		if len(e.data) > 0 {
			if err := emit(e.data); err != nil {
				return err
			}
		}
		pos += uint32(len(e.data))
	}

	// Pass 2: directory records, same order.
	for i, e := range a.entries {
		name, err := encodeName(e.name, NameWidth)
		if err != nil {
			return err
		}
		rec := dirRecord{DataOffset: offsets[i], DataLength: uint32(len(e.data))}
		copy(rec.Name[:], name)
		if err := writeDirRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
