// Package linking turns detected file references into links inside a single
// whitelisted target directory, records them, and reclaims them on request.
//
// The pieces map to the life of one link:
//
//   - NextFreeName picks a collision-free name in the target directory,
//     appending " (N)" before the extension.
//   - Creator makes the hard or symbolic link and records it in the registry.
//     Both link primitives refuse to replace an existing entry, so a name
//     taken between naming and creation fails instead of overwriting.
//   - Reclaimer deletes a recorded link. A hard link whose data has no other
//     directory entry is only deleted with explicit confirmation, because
//     removing it destroys the last copy of the data. The link-count check is
//     advisory: another process can change the count right after it is read.
//
// Service ties these together behind the operations used by the CLI. None of
// the types here are safe for concurrent use.
package linking
