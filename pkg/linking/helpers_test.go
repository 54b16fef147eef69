package linking

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/inputbox/pkg/datastore"
	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/filesystem"
	"github.com/arthur-debert/inputbox/pkg/registry"
	"github.com/arthur-debert/inputbox/pkg/testutil"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/stretchr/testify/require"
)

// env is a real-filesystem fixture with a home directory holding sources, a
// target directory for links and a state directory for the registry
type env struct {
	root      string
	home      string
	targetDir string
	fs        types.FS
	store     *toggleStore
	registry  *registry.Registry
	service   *Service
}

// toggleStore fails Save while failSave is set
type toggleStore struct {
	datastore.DataStore
	failSave bool
}

func (s *toggleStore) Save(records []types.LinkRecord) error {
	if s.failSave {
		return errors.Wrap(stderrors.New("read-only state dir"), errors.ErrRegistryWrite, "failed to write registry")
	}
	return s.DataStore.Save(records)
}

func newEnv(t *testing.T) *env {
	t.Helper()

	root := testutil.RealTempDir(t)
	e := &env{
		root:      root,
		home:      testutil.CreateDir(t, root, "home"),
		targetDir: testutil.CreateDir(t, root, "wl"),
		fs:        filesystem.NewOS(),
	}
	e.store = &toggleStore{DataStore: datastore.New(e.fs, filepath.Join(root, "state", "links.toml"))}

	reg, err := registry.Open(e.store)
	require.NoError(t, err)
	e.registry = reg
	e.service = NewService(e.fs, reg)
	return e
}

func (e *env) options(kind types.LinkKind) Options {
	return Options{Enabled: true, TargetDir: e.targetDir, Kind: kind, MaxSuffix: DefaultMaxSuffix}
}

func (e *env) reopen(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Open(e.store)
	require.NoError(t, err)
	return reg
}

func linkCount(t *testing.T, path string) uint64 {
	t.Helper()
	n, err := filesystem.NewOS().LinkCount(path)
	require.NoError(t, err)
	return n
}

func sameFile(t *testing.T, a, b string) bool {
	t.Helper()
	ai, err := os.Stat(a)
	require.NoError(t, err)
	bi, err := os.Stat(b)
	require.NoError(t, err)
	return os.SameFile(ai, bi)
}

func recordedLinks(reg *registry.Registry) []string {
	var out []string
	for rec := range reg.List() {
		out = append(out, rec.LinkPath)
	}
	return out
}
