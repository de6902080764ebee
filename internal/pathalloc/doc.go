// Package pathalloc computes deterministic archive destinations.
//
// The destination directory derives purely from metadata
// ({type}/{camera}/{year}/{month}); the filename is the first free candidate
// in a fixed order, so identical metadata against identical directory state
// always allocates the same path. Callers serialize allocation with the move
// that follows it; this package only inspects the filesystem.
package pathalloc
