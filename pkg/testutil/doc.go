// Package testutil provides utilities for testing inputbox components.
//
// Key components:
//   - NewTestFS: in-memory types.FS for registry and config tests
//   - MockPaths: a paths.Paths rooted in a test directory
//   - CreateFile/CreateDir/CreateSymlink: real-filesystem fixtures
//
// Hard links and link counts only exist on a real filesystem, so linking
// tests use t.TempDir() through RealTempDir rather than the memory FS.
package testutil
