package pak

import (
	"context"
	"io"
)

// defaultChunkSize is the transfer block size for the context-aware
// codec variants. Cancellation is only observed on block boundaries.
const defaultChunkSize = 64 << 10

// readChunks fills buf from r in fixed-size blocks, checking ctx
// between blocks. A short read surfaces as io.ErrUnexpectedEOF.
func readChunks(ctx context.Context, r io.Reader, buf []byte, chunk int) error {
	if chunk <= 0 {
		chunk = defaultChunkSize
	}
	for off := 0; off < len(buf); {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(chunk, len(buf)-off)
		if _, err := io.ReadFull(r, buf[off:off+n]); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// writeChunks writes buf to w in fixed-size blocks, checking ctx
// between blocks.
func writeChunks(ctx context.Context, w io.Writer, buf []byte, chunk int) error {
	if chunk <= 0 {
		chunk = defaultChunkSize
	}
	for off := 0; off < len(buf); {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(chunk, len(buf)-off)
		if _, err := w.Write(buf[off : off+n]); err != nil {
			return err
		}
		off += n
	}
	return nil
}
