package pak

const (
	headerSize uint32 = 12
	recordSize uint32 = 64

	// NameWidth is the fixed width of the directory name field,
	// including any null padding. Encoded names must fit in it.
	NameWidth = 56
)

// Magic is the 4-byte PACK file signature.
var Magic = [4]byte{'P', 'A', 'C', 'K'}
