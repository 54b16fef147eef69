package linking

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/registry"
	"github.com/arthur-debert/inputbox/pkg/types"
)

// Outcome is the result of a deletion request
type Outcome int

const (
	// Deleted means the link entry and its record are gone
	Deleted Outcome = iota
	// NeedsConfirmation means the link is the last directory entry for its
	// data and nothing was deleted
	NeedsConfirmation
	// NotFound means no record exists for the link path
	NotFound
	// FilesystemError means the entry could not be inspected or removed; the
	// record was kept
	FilesystemError
)

func (o Outcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case NeedsConfirmation:
		return "needs-confirmation"
	case NotFound:
		return "not-found"
	case FilesystemError:
		return "filesystem-error"
	default:
		return "unknown"
	}
}

// DeletionResult reports what a deletion request did
type DeletionResult struct {
	Outcome Outcome
	Record  types.LinkRecord
	// LinkCount is the observed number of entries for hard links; zero when
	// it was not read or could not be determined
	LinkCount uint64
	Err       error
}

// Reclaimer deletes recorded links
type Reclaimer struct {
	fs       types.FS
	registry *registry.Registry
}

// NewReclaimer creates a Reclaimer over reg
func NewReclaimer(fsys types.FS, reg *registry.Registry) *Reclaimer {
	return &Reclaimer{fs: fsys, registry: reg}
}

// Reclaim deletes the link recorded at linkPath. The filesystem entry is
// removed first and the record only after that succeeded.
func (r *Reclaimer) Reclaim(linkPath string, confirmed bool) DeletionResult {
	logger := logging.GetLogger("linking.reclaimer").With().Str("link", linkPath).Logger()

	rec, ok := r.registry.Get(linkPath)
	if !ok {
		return DeletionResult{
			Outcome: NotFound,
			Err:     errors.Newf(errors.ErrNotFound, "no link recorded at %s", linkPath),
		}
	}
	result := DeletionResult{Record: rec}

	info, err := r.fs.Lstat(linkPath)
	if err != nil {
		result.Outcome = FilesystemError
		result.Err = errors.Wrapf(err, errors.ErrFilesystem, "cannot inspect %s", linkPath)
		return result
	}

	isSymlink := info.Mode()&fs.ModeSymlink != 0
	if !(rec.Kind == types.LinkKindSymbolic && isSymlink) {
		count, err := r.fs.LinkCount(linkPath)
		switch {
		case err == nil:
			result.LinkCount = count
		case stderrors.Is(err, stderrors.ErrUnsupported):
			// Unknown count: treat as the last copy.
			logger.Debug().Msg("Link count unavailable on this platform")
		default:
			result.Outcome = FilesystemError
			result.Err = errors.Wrapf(err, errors.ErrFilesystem, "cannot read link count of %s", linkPath)
			return result
		}

		if result.LinkCount < 2 && !confirmed {
			logger.Info().Uint64("linkCount", result.LinkCount).Msg("Last copy of data, confirmation required")
			result.Outcome = NeedsConfirmation
			return result
		}
	}

	if err := r.fs.Remove(linkPath); err != nil {
		result.Outcome = FilesystemError
		result.Err = errors.Wrapf(err, errors.ErrFilesystem, "failed to remove %s", linkPath)
		return result
	}

	if err := r.registry.Remove(linkPath); err != nil {
		// The entry is gone but the record stays; Forget can drop it later.
		logger.Error().Err(err).Msg("Link removed but registry update failed")
		result.Outcome = FilesystemError
		result.Err = err
		return result
	}

	logger.Info().Str("kind", rec.Kind.String()).Msg("Link deleted")
	result.Outcome = Deleted
	return result
}
