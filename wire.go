package pak

import (
	"encoding/binary"
	"io"
)

type fileHeader struct {
	Magic       [4]byte
	IndexOffset uint32
	IndexSize   uint32
}

type dirRecord struct {
	Name       [NameWidth]byte
	DataOffset uint32
	DataLength uint32
}

func readFileHeader(r io.Reader) (fileHeader, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fileHeader{}, err
	}
	var h fileHeader
	copy(h.Magic[:], buf[0:4])
	h.IndexOffset = binary.LittleEndian.Uint32(buf[4:8])
	h.IndexSize = binary.LittleEndian.Uint32(buf[8:12])
	return h, nil
}

func writeFileHeader(w io.Writer, h fileHeader) error {
	var buf [headerSize]byte
	copy(buf[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.IndexOffset)
	binary.LittleEndian.PutUint32(buf[8:12], h.IndexSize)
	_, err := w.Write(buf[:])
	return err
}

// parseDirRecord decodes one 64-byte directory record. The caller
// guarantees len(buf) == recordSize.
func parseDirRecord(buf []byte) dirRecord {
	var rec dirRecord
	copy(rec.Name[:], buf[0:NameWidth])
	rec.DataOffset = binary.LittleEndian.Uint32(buf[NameWidth : NameWidth+4])
	rec.DataLength = binary.LittleEndian.Uint32(buf[NameWidth+4 : NameWidth+8])
	return rec
}

func writeDirRecord(w io.Writer, rec dirRecord) error {
	var buf [recordSize]byte
	copy(buf[0:NameWidth], rec.Name[:])
	binary.LittleEndian.PutUint32(buf[NameWidth:NameWidth+4], rec.DataOffset)
	binary.LittleEndian.PutUint32(buf[NameWidth+4:NameWidth+8], rec.DataLength)
	_, err := w.Write(buf[:])
	return err
}

// encodeName produces the fixed-width, null-padded directory form of
// name. It returns ErrNameTooLong if name does not fit in width bytes.
func encodeName(name string, width int) ([]byte, error) {
	if err := checkNameWidth(name, width); err != nil {
		return nil, err
	}
	buf := make([]byte, width)
	copy(buf, name)
	return buf, nil
}

// decodeName returns the text before the first null byte. Bytes after
// it are padding and are ignored even when non-zero, mirroring
// encodeName's null fill.
func decodeName(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
