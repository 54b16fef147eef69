package registry

import (
	"iter"
	"slices"

	"github.com/arthur-debert/inputbox/pkg/datastore"
	"github.com/arthur-debert/inputbox/pkg/errors"
	"github.com/arthur-debert/inputbox/pkg/logging"
	"github.com/arthur-debert/inputbox/pkg/types"
)

// Registry is the ordered collection of LinkRecords, keyed by link path.
type Registry struct {
	store   datastore.DataStore
	records []types.LinkRecord
}

// Open loads the registry from store.
func Open(store datastore.DataStore) (*Registry, error) {
	records, err := store.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if seen[rec.LinkPath] {
			return nil, errors.Newf(errors.ErrRegistryLoad, "duplicate registry entry for %s", rec.LinkPath)
		}
		seen[rec.LinkPath] = true
	}

	return &Registry{store: store, records: records}, nil
}

// Add appends rec and persists the registry. A record for the same link path
// is rejected with ErrAlreadyExists.
func (r *Registry) Add(rec types.LinkRecord) error {
	logger := logging.GetLogger("registry")

	if _, ok := r.Get(rec.LinkPath); ok {
		return errors.Newf(errors.ErrAlreadyExists, "link %s is already registered", rec.LinkPath)
	}

	r.records = append(r.records, rec)
	if err := r.store.Save(r.records); err != nil {
		r.records = r.records[:len(r.records)-1]
		return err
	}

	logger.Info().
		Str("source", rec.SourcePath).
		Str("link", rec.LinkPath).
		Str("kind", rec.Kind.String()).
		Msg("Link registered")
	return nil
}

// List returns the current records in creation order. The sequence reads the
// registry when iteration starts, so it can be ranged over any number of times.
func (r *Registry) List() iter.Seq[types.LinkRecord] {
	return func(yield func(types.LinkRecord) bool) {
		for _, rec := range slices.Clone(r.records) {
			if !yield(rec) {
				return
			}
		}
	}
}

// Get returns the record for linkPath.
func (r *Registry) Get(linkPath string) (types.LinkRecord, bool) {
	i := r.index(linkPath)
	if i < 0 {
		return types.LinkRecord{}, false
	}
	return r.records[i], true
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Remove deletes the record for linkPath and persists the registry. It never
// touches the link on disk.
func (r *Registry) Remove(linkPath string) error {
	logger := logging.GetLogger("registry")

	i := r.index(linkPath)
	if i < 0 {
		return errors.Newf(errors.ErrNotFound, "no registry record for %s", linkPath)
	}

	previous := r.records
	r.records = slices.Delete(slices.Clone(r.records), i, i+1)
	if err := r.store.Save(r.records); err != nil {
		r.records = previous
		return err
	}

	logger.Info().Str("link", linkPath).Msg("Link unregistered")
	return nil
}

func (r *Registry) index(linkPath string) int {
	return slices.IndexFunc(r.records, func(rec types.LinkRecord) bool {
		return rec.LinkPath == linkPath
	})
}
