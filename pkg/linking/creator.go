package linking

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/registry"
	"github.com/arthur-debert/inputbox/pkg/types"
)

// Creator makes links and records them
type Creator struct {
	fs       types.FS
	registry *registry.Registry
	now      func() time.Time
}

// NewCreator creates a Creator that records into reg
func NewCreator(fsys types.FS, reg *registry.Registry) *Creator {
	return &Creator{fs: fsys, registry: reg, now: time.Now}
}

// Create links dest to source and appends the record to the registry. There
// is no retry and no fallback to another link kind: a hard link across
// devices fails with the operating system's reason.
//
// If the registry cannot be written the new link is removed again, so a
// returned error means nothing was recorded.
func (c *Creator) Create(source, dest string, kind types.LinkKind) (types.LinkRecord, error) {
	logger := logging.GetLogger("linking.creator")

	source, err := filepath.Abs(source)
	if err != nil {
		return types.LinkRecord{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid source path %s", source)
	}

	switch kind {
	case types.LinkKindHard:
		err = c.fs.Link(source, dest)
	case types.LinkKindSymbolic:
		err = c.fs.Symlink(source, dest)
	default:
		return types.LinkRecord{}, errors.Newf(errors.ErrInvalidInput, "unknown link kind %q", kind)
	}
	if err != nil {
		return types.LinkRecord{}, errors.Wrapf(err, errors.ErrFilesystem, "failed to create %s link", kind).
			WithDetail("source", source).
			WithDetail("link", dest)
	}

	rec := types.LinkRecord{
		SourcePath: source,
		LinkPath:   dest,
		Kind:       kind,
		CreatedAt:  c.now().UTC().Truncate(time.Second),
	}
	if err := c.registry.Add(rec); err != nil {
		if rmErr := c.fs.Remove(dest); rmErr != nil {
			logger.Error().Err(rmErr).Str("link", dest).Msg("Failed to remove unrecorded link")
		}
		return types.LinkRecord{}, err
	}

	logger.Info().
		Str("source", source).
		Str("link", dest).
		Str("kind", kind.String()).
		Msg("Link created")
	return rec, nil
}
