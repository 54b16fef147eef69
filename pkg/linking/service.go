package linking

import (
	stderrors "errors"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/arthur-debert/inputbox/pkg/config"
	"github.com/arthur-debert/inputbox/pkg/detect"
	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/paths"
	"github.com/arthur-debert/inputbox/pkg/registry"
	"github.com/arthur-debert/inputbox/pkg/types"
)

// Options is the linking configuration for a single call
type Options struct {
	Enabled   bool
	TargetDir string
	Kind      types.LinkKind
	MaxSuffix int
}

// OptionsFromConfig builds Options from the loaded configuration
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	kind, err := cfg.LinkKind()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Enabled:   cfg.Linking.Enabled,
		TargetDir: cfg.ExpandedTargetDir(),
		Kind:      kind,
		MaxSuffix: cfg.Linking.MaxSuffix,
	}, nil
}

// LinkedFileReference describes a link created by TryLink
type LinkedFileReference struct {
	SourcePath string
	LinkPath   string
	Kind       types.LinkKind
}

// Service exposes the linking operations
type Service struct {
	fs        types.FS
	registry  *registry.Registry
	creator   *Creator
	reclaimer *Reclaimer
}

// NewService creates a Service operating on fsys and recording into reg
func NewService(fsys types.FS, reg *registry.Registry) *Service {
	return &Service{
		fs:        fsys,
		registry:  reg,
		creator:   NewCreator(fsys, reg),
		reclaimer: NewReclaimer(fsys, reg),
	}
}

// TryLink links the file c refers to into opts.TargetDir. It returns nil and
// no error when linking is disabled or c is not a file reference.
func (s *Service) TryLink(opts Options, c detect.Candidate) (*LinkedFileReference, error) {
	logger := logging.GetLogger("linking")
	defer logging.LogOperationStart(logger, "try-link")()

	if !opts.Enabled {
		return nil, nil
	}

	source, ok := detect.Detect(s.fs, c)
	if !ok {
		return nil, nil
	}

	if !opts.Kind.Valid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown link kind %q", opts.Kind)
	}

	targetDir, err := s.checkTargetDir(opts.TargetDir)
	if err != nil {
		return nil, err
	}

	dest, err := NextFreeName(s.fs, targetDir, filepath.Base(source), opts.MaxSuffix)
	if err != nil {
		return nil, err
	}

	rec, err := s.creator.Create(source, dest, opts.Kind)
	if err != nil {
		return nil, err
	}

	return &LinkedFileReference{
		SourcePath: rec.SourcePath,
		LinkPath:   rec.LinkPath,
		Kind:       rec.Kind,
	}, nil
}

// ListLinks returns the recorded links in creation order
func (s *Service) ListLinks() iter.Seq[types.LinkRecord] {
	return s.registry.List()
}

// RequestDelete deletes the link recorded at linkPath. A hard link holding
// the last copy of its data is only deleted when confirmed is true.
func (s *Service) RequestDelete(linkPath string, confirmed bool) DeletionResult {
	logger := logging.GetLogger("linking")
	defer logging.LogOperationStart(logger, "request-delete")()

	return s.reclaimer.Reclaim(s.lookupPath(linkPath), confirmed)
}

// Forget drops the record for a link whose entry no longer exists on disk
func (s *Service) Forget(linkPath string) error {
	logger := logging.GetLogger("linking")
	linkPath = s.lookupPath(linkPath)

	if _, ok := s.registry.Get(linkPath); !ok {
		return errors.Newf(errors.ErrNotFound, "no link recorded at %s", linkPath)
	}

	present, err := s.LinkPresent(linkPath)
	if err != nil {
		return err
	}
	if present {
		return errors.Newf(errors.ErrInvalidInput, "%s still exists, delete it instead of forgetting it", linkPath)
	}

	if err := s.registry.Remove(linkPath); err != nil {
		return err
	}
	logger.Info().Str("link", linkPath).Msg("Forgot missing link")
	return nil
}

// LinkPresent reports whether anything exists at linkPath. Dangling symbolic
// links count as present.
func (s *Service) LinkPresent(linkPath string) (bool, error) {
	_, err := s.fs.Lstat(linkPath)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFilesystem, "cannot inspect %s", linkPath)
}

// LinkTarget returns what the symbolic link recorded in rec points at. Hard
// links have no target and yield "".
func (s *Service) LinkTarget(rec types.LinkRecord) (string, error) {
	if rec.Kind != types.LinkKindSymbolic {
		return "", nil
	}
	target, err := s.fs.Readlink(rec.LinkPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFilesystem, "cannot read link %s", rec.LinkPath)
	}
	return target, nil
}

// Count returns the number of recorded links
func (s *Service) Count() int {
	return s.registry.Len()
}

// CheckTargetDir verifies dir exists and is a directory and returns its
// absolute form
func (s *Service) CheckTargetDir(dir string) (string, error) {
	return s.checkTargetDir(dir)
}

func (s *Service) checkTargetDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New(errors.ErrTargetDir, "no target directory configured")
	}

	abs, err := filepath.Abs(paths.ExpandHome(dir))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTargetDir, "invalid target directory %s", dir)
	}

	info, err := s.fs.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTargetDir, "target directory %s is not available", abs)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrTargetDir, "target directory %s is not a directory", abs)
	}
	return abs, nil
}

// lookupPath makes a user-supplied link path comparable with recorded ones.
// Recorded paths are absolute and clean.
func (s *Service) lookupPath(linkPath string) string {
	abs, err := filepath.Abs(linkPath)
	if err != nil {
		return filepath.Clean(linkPath)
	}
	return abs
}
