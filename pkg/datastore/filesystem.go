package datastore

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// formatVersion is written into every registry file
const formatVersion = 1

type document struct {
	Version int                `toml:"version"`
	Links   []types.LinkRecord `toml:"links"`
}

type filesystemDataStore struct {
	fs   types.FS
	path string
}

// New creates a DataStore persisting to the TOML file at path.
func New(fs types.FS, path string) DataStore {
	return &filesystemDataStore{
		fs:   fs,
		path: path,
	}
}

func (s *filesystemDataStore) Load() ([]types.LinkRecord, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.LinkRecord{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRegistryLoad, "failed to read registry %s", s.path)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryLoad, "failed to parse registry %s", s.path)
	}
	if doc.Version > formatVersion {
		return nil, errors.Newf(errors.ErrRegistryLoad, "registry %s has version %d, newer than supported %d",
			s.path, doc.Version, formatVersion)
	}

	for i, rec := range doc.Links {
		if rec.LinkPath == "" || rec.SourcePath == "" || !rec.Kind.Valid() {
			return nil, errors.Newf(errors.ErrRegistryLoad, "registry %s: entry %d is incomplete", s.path, i+1).
				WithDetail("entry", rec)
		}
	}

	if doc.Links == nil {
		doc.Links = []types.LinkRecord{}
	}
	return doc.Links, nil
}

// Save writes to a temporary file next to the registry, syncs it and renames
// it over the old one.
func (s *filesystemDataStore) Save(records []types.LinkRecord) error {
	logger := logging.GetLogger("datastore")

	data, err := toml.Marshal(document{Version: formatVersion, Links: records})
	if err != nil {
		return errors.Wrap(err, errors.ErrRegistryWrite, "failed to encode registry")
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to create state directory %s", dir)
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFileSync(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to write %s", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to replace %s", s.path)
	}

	logger.Debug().Str("path", s.path).Int("records", len(records)).Msg("Registry saved")
	return nil
}
