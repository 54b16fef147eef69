// Package datastore persists inputbox's link registry on the filesystem.
// It abstracts away the on-disk format (a TOML document in the state
// directory) behind a small Load/Save API used by pkg/registry.
package datastore
