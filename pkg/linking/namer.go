package linking

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/types"
)

// DefaultMaxSuffix is used when no positive cap is configured
const DefaultMaxSuffix = 10000

// NextFreeName returns the first path in dir, starting with name itself, that
// has no directory entry. Later candidates are "stem (1).ext", "stem (2).ext"
// and so on; names without a stem such as ".bashrc" become ".bashrc (1)".
//
// The name is only free at the time of the check.
func NextFreeName(fsys types.FS, dir, name string, maxSuffix int) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot derive a link name from %q", name)
	}
	if maxSuffix < 1 {
		maxSuffix = DefaultMaxSuffix
	}

	stem, ext := splitName(name)
	for n := 0; n <= maxSuffix; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(dir, candidate)

		free, err := isFree(fsys, path)
		if err != nil {
			return "", err
		}
		if free {
			return path, nil
		}
	}

	return "", errors.Newf(errors.ErrNameCollisionExhausted,
		"no free name for %s in %s after %d attempts", name, dir, maxSuffix+1).
		WithDetail("dir", dir).
		WithDetail("name", name)
}

func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	stem = strings.TrimSuffix(name, ext)
	if stem == "" {
		return name, ""
	}
	return stem, ext
}

// isFree uses Lstat so that a dangling symbolic link still occupies its name
func isFree(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Lstat(path)
	if err == nil {
		return false, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, errors.Wrapf(err, errors.ErrFilesystem, "failed to check %s", path)
}
