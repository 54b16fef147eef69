//go:build unix

package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// linkCount reads st_nlink for name without following a final symlink.
func linkCount(name string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Lstat(name, &st); err != nil {
		return 0, &fs.PathError{Op: "lstat", Path: name, Err: err}
	}
	return uint64(st.Nlink), nil
}
