//go:build !unix

package filesystem

import (
	"errors"
	"io/fs"
	"os"
)

// linkCount is not available without st_nlink. Callers treat the error as
// "count unknown", which keeps the last-reference guard engaged.
func linkCount(name string) (uint64, error) {
	if _, err := os.Lstat(name); err != nil {
		return 0, err
	}
	return 0, &fs.PathError{Op: "linkcount", Path: name, Err: errors.ErrUnsupported}
}
