package pak

type Limits struct {
	MaxEntries   int    // directory records per archive
	MaxEntrySize uint32 // data length a single record may declare
	MaxTotalSize uint64 // summed data length across all entries
}

func defaultLimits() Limits {
	return Limits{
		MaxEntries:   1 << 16,
		MaxEntrySize: 1 << 30, // 1 GiB
		MaxTotalSize: 4 << 30, // 4 GiB, the format's uint32 ceiling
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxEntries == 0 {
		l.MaxEntries = d.MaxEntries
	}
	if l.MaxEntrySize == 0 {
		l.MaxEntrySize = d.MaxEntrySize
	}
	if l.MaxTotalSize == 0 {
		l.MaxTotalSize = d.MaxTotalSize
	}
	return l
}
