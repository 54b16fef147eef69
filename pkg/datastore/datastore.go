package datastore

import "github.com/arthur-debert/inputbox/pkg/types"

// DataStore loads and saves the ordered list of link records.
type DataStore interface {
	// Load returns the persisted records in insertion order. A store that
	// has never been saved loads as empty.
	Load() ([]types.LinkRecord, error)

	// Save replaces the persisted records. It returns only after the data
	// is in place, so a crash never leaves a half-written file behind.
	Save(records []types.LinkRecord) error
}
