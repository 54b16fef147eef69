// Package registry keeps the durable, ordered record of links inputbox has
// created. Every mutation is persisted through a datastore.DataStore before
// the call returns; a failed write leaves the in-memory state unchanged.
//
// A Registry is owned by a single goroutine and is not safe for concurrent use.
package registry
