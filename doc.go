// Package pak implements the PACK archive format used by classic
// id Software games to bundle assets (maps, sounds, textures) into a
// single file.
//
// # File Format Overview
//
// A PACK file consists of:
//   - A 12-byte fixed header with the "PACK" magic and the location of
//     the directory
//   - A body of concatenated entry data blocks, referenced by absolute
//     offset
//   - A directory of fixed 64-byte records, one per entry, each holding
//     a null-padded 56-byte name, a data offset, and a data length
//
// All integers are little-endian. The directory may live anywhere in
// the file; the header's index_offset locates it. Directory order, not
// body layout order, determines entry order.
//
// # Basic Usage
//
// To read a PACK file:
//
//	f, _ := os.Open("pak0.pak")
//	defer f.Close()
//	a, err := pak.Decode(f)
//
// To build and write one:
//
//	a := pak.NewArchive()
//	e, _ := pak.NewEntry("maps/start.bsp", data)
//	a.Append(e)
//	f, _ := os.Create("out.pak")
//	defer f.Close()
//	err := pak.Encode(f, a)
//
// The whole archive is materialized in memory; there is no streaming or
// partial decode. An Archive carries no locking and must not be mutated
// from more than one goroutine.
//
// # Security Considerations
//
// Directory records declare data lengths that the decoder allocates
// buffers for. Configurable [Limits] cap entry count and sizes so a
// hostile file cannot force oversized allocations. All limits are
// enforced before allocation.
package pak
