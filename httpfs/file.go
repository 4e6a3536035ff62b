package httpfs

import (
	"errors"
	"io/fs"
	"os"
)

// LoadFile reads the whole file at path in binary mode. Missing files
// come back as ErrNotFound; any other failure is returned as-is for
// the caller to classify.
func LoadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
