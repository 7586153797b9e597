package pak

import (
	"fmt"
	"iter"
	"strings"
)

// Entry is one named binary blob stored in an archive.
//
// The zero value is an empty, unnamed entry. Names are validated when
// assigned so that an entry whose name cannot be serialized never
// exists.
type Entry struct {
	name string
	data []byte
}

// NewEntry returns an entry with the given name and data. It returns
// ErrNameTooLong if name does not fit the directory name field.
func NewEntry(name string, data []byte) (*Entry, error) {
	e := &Entry{data: data}
	if err := e.SetName(name); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the entry's name.
func (e *Entry) Name() string { return e.name }

// SetName assigns the entry's name. It returns ErrNameTooLong if the
// name's byte length exceeds NameWidth, leaving the previous name in
// place.
func (e *Entry) SetName(name string) error {
	if err := checkNameWidth(name, NameWidth); err != nil {
		return err
	}
	e.name = name
	return nil
}

// Data returns the entry's data buffer. An entry that was never
// assigned data reads as empty.
func (e *Entry) Data() []byte { return e.data }

// SetData assigns the entry's data buffer. The entry takes ownership
// of data; callers must not modify it afterwards.
func (e *Entry) SetData(data []byte) { e.data = data }

// Size returns the length of the entry's data in bytes.
func (e *Entry) Size() int { return len(e.data) }

func checkNameWidth(name string, width int) error {
	if len(name) > width {
		return fmt.Errorf("%w: %q is %d bytes, field is %d", ErrNameTooLong, name, len(name), width)
	}
	return nil
}

// Archive is the in-memory representation of a PACK file: an ordered
// sequence of entries plus derived queries. Insertion order is
// preserved and duplicate names are permitted; the format imposes no
// uniqueness constraint.
type Archive struct {
	entries []*Entry
}

// NewArchive returns an archive holding the given entries in order.
func NewArchive(entries ...*Entry) *Archive {
	return &Archive{entries: entries}
}

// Len returns the number of entries.
func (a *Archive) Len() int { return len(a.entries) }

// Entry returns the entry at index i.
func (a *Archive) Entry(i int) *Entry { return a.entries[i] }

// Append adds entries to the end of the archive.
func (a *Archive) Append(entries ...*Entry) {
	a.entries = append(a.entries, entries...)
}

// Remove deletes and returns the entry at index i, shifting later
// entries down.
func (a *Archive) Remove(i int) *Entry {
	e := a.entries[i]
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	return e
}

// Entries returns an iterator over all entries in archive order.
func (a *Archive) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range a.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// FindByName returns the first entry whose name equals name,
// case-insensitively. With duplicate names the earliest entry wins.
func (a *Archive) FindByName(name string) (*Entry, bool) {
	for _, e := range a.entries {
		if strings.EqualFold(e.name, name) {
			return e, true
		}
	}
	return nil, false
}

// EntriesByExtension returns an iterator over entries whose name's
// suffix after the final '.' equals ext, case-insensitively. A leading
// dot on ext is ignored, so ".bsp" and "bsp" are equivalent. Entries
// without a dot in their name never match.
func (a *Archive) EntriesByExtension(ext string) iter.Seq[*Entry] {
	ext = strings.TrimPrefix(ext, ".")
	return func(yield func(*Entry) bool) {
		for _, e := range a.entries {
			i := strings.LastIndexByte(e.name, '.')
			if i < 0 || !strings.EqualFold(e.name[i+1:], ext) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// TotalSize returns the sum of all entry data lengths in bytes.
func (a *Archive) TotalSize() int64 {
	var n int64
	for _, e := range a.entries {
		n += int64(len(e.data))
	}
	return n
}
