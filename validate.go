package pak

import (
	"fmt"
	"math"
)

// validateArchive checks that a can be laid out as a well-formed PACK
// file under the given limits. Encode runs it before writing any byte.
func validateArchive(a *Archive, limits Limits) error {
	if a == nil {
		return fmt.Errorf("%w: archive is nil", ErrValidation)
	}
	if len(a.entries) > limits.MaxEntries {
		return fmt.Errorf("%w: %d entries", ErrLimitExceeded, len(a.entries))
	}
	for i, e := range a.entries {
		// Names are validated at assignment; re-check so a zero-value
		// Entry mutated through unsafe means still fails here.
		if err := checkNameWidth(e.name, NameWidth); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if uint64(len(e.data)) > uint64(limits.MaxEntrySize) {
			return fmt.Errorf("%w: entry %q is %d bytes", ErrLimitExceeded, e.name, len(e.data))
		}
	}
	total := a.TotalSize()
	if uint64(total) > limits.MaxTotalSize {
		return fmt.Errorf("%w: total data size %d", ErrLimitExceeded, total)
	}
	// Every absolute offset in the file must fit in a uint32 field.
	end := uint64(headerSize) + uint64(total) + uint64(len(a.entries))*uint64(recordSize)
	if end > math.MaxUint32 {
		return fmt.Errorf("%w: archive layout exceeds 4 GiB addressing", ErrValidation)
	}
	return nil
}
