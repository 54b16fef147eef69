// Package types defines the core types and interfaces used throughout inputbox.
// This includes the FS interface the linking subsystem performs its I/O through,
// and the LinkKind and LinkRecord data structures it persists.
package types
