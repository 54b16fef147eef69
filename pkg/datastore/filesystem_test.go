package datastore

import (
	"io/fs"
	"testing"
	"time"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/testutil"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryPath = "/home/u/.local/state/inputbox/links.toml"

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	store := New(testutil.NewTestFS(), registryPath)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestSaveLoad_PreservesOrder(t *testing.T) {
	fs := testutil.NewTestFS()
	store := New(fs, registryPath)
	created := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	records := []types.LinkRecord{
		{SourcePath: "/home/u/report.pdf", LinkPath: "/tmp/wl/report.pdf", Kind: types.LinkKindHard, CreatedAt: created},
		{SourcePath: "/home/u/a.txt", LinkPath: "/tmp/wl/a.txt", Kind: types.LinkKindSymbolic, CreatedAt: created},
		{SourcePath: "/home/u/report.pdf", LinkPath: "/tmp/wl/report (1).pdf", Kind: types.LinkKindHard, CreatedAt: created},
	}
	require.NoError(t, store.Save(records))

	// A fresh store reads the same file
	loaded, err := New(fs, registryPath).Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i := range records {
		assert.Equal(t, records[i].SourcePath, loaded[i].SourcePath)
		assert.Equal(t, records[i].LinkPath, loaded[i].LinkPath)
		assert.Equal(t, records[i].Kind, loaded[i].Kind)
		assert.True(t, records[i].CreatedAt.Equal(loaded[i].CreatedAt))
	}

	// No temp file is left behind
	_, err = fs.Stat(registryPath + ".tmp")
	assert.Error(t, err)
}

func TestSave_WritesLiteralKindTags(t *testing.T) {
	fs := testutil.NewTestFS()
	store := New(fs, registryPath)

	require.NoError(t, store.Save([]types.LinkRecord{
		{SourcePath: "/a", LinkPath: "/wl/a", Kind: types.LinkKindHard},
		{SourcePath: "/b", LinkPath: "/wl/b", Kind: types.LinkKindSymbolic},
	}))

	data, err := fs.ReadFile(registryPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[[links]]")
	assert.Regexp(t, `kind = ['"]hard['"]`, content)
	assert.Regexp(t, `kind = ['"]symbolic['"]`, content)
	assert.Contains(t, content, "version = 1")
}

func TestSave_EmptyListRoundTrips(t *testing.T) {
	fs := testutil.NewTestFS()
	store := New(fs, registryPath)

	require.NoError(t, store.Save([]types.LinkRecord{{SourcePath: "/a", LinkPath: "/wl/a", Kind: types.LinkKindHard}}))
	require.NoError(t, store.Save([]types.LinkRecord{}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[[links]\nsource ="},
		{"newer version", "version = 2\n"},
		{"unknown kind", "version = 1\n[[links]]\nsource = '/a'\nlink = '/wl/a'\nkind = 'junction'\n"},
		{"missing link path", "version = 1\n[[links]]\nsource = '/a'\nkind = 'hard'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewTestFS()
			require.NoError(t, fs.MkdirAll("/home/u/.local/state/inputbox", 0755))
			require.NoError(t, fs.WriteFile(registryPath, []byte(tt.content), 0644))

			_, err := New(fs, registryPath).Load()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryLoad))
		})
	}
}

// opRecorder logs the write calls made through it
type opRecorder struct {
	types.FS
	ops []string
}

func (r *opRecorder) WriteFile(name string, data []byte, perm fs.FileMode) error {
	r.ops = append(r.ops, "write "+name)
	return r.FS.WriteFile(name, data, perm)
}

func (r *opRecorder) WriteFileSync(name string, data []byte, perm fs.FileMode) error {
	r.ops = append(r.ops, "sync "+name)
	return r.FS.WriteFileSync(name, data, perm)
}

func (r *opRecorder) Rename(oldpath, newpath string) error {
	r.ops = append(r.ops, "rename "+oldpath+" "+newpath)
	return r.FS.Rename(oldpath, newpath)
}

func TestSave_SyncsBeforeRename(t *testing.T) {
	rec := &opRecorder{FS: testutil.NewTestFS()}
	store := New(rec, registryPath)

	require.NoError(t, store.Save([]types.LinkRecord{
		{SourcePath: "/home/u/a.txt", LinkPath: "/tmp/wl/a.txt", Kind: types.LinkKindHard},
	}))

	tmp := registryPath + ".tmp"
	assert.Equal(t, []string{"sync " + tmp, "rename " + tmp + " " + registryPath}, rec.ops)

	loaded, err := New(rec.FS, registryPath).Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}
