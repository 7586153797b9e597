package pak

import (
	"os"
	"path/filepath"
)

// ReadFile decodes the PACK archive stored at path.
func ReadFile(path string, opts ...ReadOption) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, opts...)
}

// WriteFile encodes a to path. The archive is written to a temporary
// file in the same directory and renamed into place only after the
// encode succeeds, so a failed or aborted encode never leaves a
// truncated file under the final name.
func WriteFile(path string, a *Archive, opts ...WriteOption) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pak-*")
	if err != nil {
		return err
	}
	if err := Encode(tmp, a, opts...); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
