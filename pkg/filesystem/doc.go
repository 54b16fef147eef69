// Package filesystem provides filesystem implementations for inputbox.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an in-memory test filesystem.
package filesystem
