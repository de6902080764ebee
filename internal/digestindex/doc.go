// Package digestindex persists the content-digest journal in SQLite.
//
// The Store maps a SHA-512 content digest to the archive-relative path the
// content was filed under, and is the single source of truth for "already
// archived". Records are append-only: nothing updates or deletes a row, even
// when the archived file is later removed from disk. A UNIQUE index on the
// digest column backs the pipeline's exactly-once guarantee; Insert surfaces
// a violation as ErrDuplicateDigest so callers can treat it as the defect
// signal it is.
//
// database/sql serializes concurrent access; the check-then-insert sequence
// around these calls is additionally serialized by the importer's critical
// section because its atomicity spans the archive tree as well.
package digestindex
