package digestindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"shoebox/internal/config"
)

// Store is the durable digest index backed by SQLite. It is the single owner
// of persisted digest state; all reads and writes go through Exists and
// Insert. Records are append-only and never mutated or deleted.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the digest index database and provisions
// the schema when absent. Opening an already-provisioned index is a no-op.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.IndexPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// Session pragmas only apply to the connection that executes them, so
	// the pool is capped at one connection. That keeps busy_timeout in
	// force for every query and serializes writers at the driver level.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a record with this digest is present. Safe to call
// concurrently with Insert from multiple workers.
func (s *Store) Exists(ctx context.Context, digest string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM digests WHERE digest = ?`, digest).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("digest lookup: %w", err)
	}
	return count > 0, nil
}

// Insert registers digest -> filename. The filename is the archive-relative
// path the content was moved to. Returns ErrDuplicateDigest when the digest
// is already recorded; under correct pipeline locking that signals a defect,
// not a routine duplicate.
func (s *Store) Insert(ctx context.Context, filename, digest string) error {
	if strings.TrimSpace(digest) == "" {
		return errors.New("insert: empty digest")
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO digests (filename, digest, created_at) VALUES (?, ?, ?)`,
		filename,
		digest,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateDigest, digest)
		}
		return fmt.Errorf("insert digest: %w", err)
	}
	return nil
}

// Lookup returns the archived relative path recorded for a digest, or "" when
// the digest is unknown.
func (s *Store) Lookup(ctx context.Context, digest string) (string, error) {
	var filename string
	err := s.db.QueryRowContext(ctx, `SELECT filename FROM digests WHERE digest = ?`, digest).Scan(&filename)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("digest lookup: %w", err)
	}
	return filename, nil
}

// Count returns the number of recorded digests.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM digests`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count digests: %w", err)
	}
	return count, nil
}

// Stats aggregates index state for diagnostic output.
type Stats struct {
	DBPath    string
	Records   int64
	Integrity bool
}

// CheckHealth returns diagnostic information about the index database.
func (s *Store) CheckHealth(ctx context.Context) (Stats, error) {
	stats := Stats{DBPath: s.path}

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		return stats, fmt.Errorf("ping index database: %w", err)
	}

	count, err := s.Count(connCtx)
	if err != nil {
		return stats, err
	}
	stats.Records = count

	var integrityResult string
	if err := s.db.QueryRowContext(connCtx, "PRAGMA integrity_check").Scan(&integrityResult); err != nil {
		return stats, fmt.Errorf("integrity check: %w", err)
	}
	stats.Integrity = strings.EqualFold(integrityResult, "ok")

	return stats, nil
}

// isUniqueViolation matches the SQLite uniqueness constraint failure on the
// digest column. The modernc driver surfaces constraint failures as plain
// errors, so the match is textual.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: digests.digest")
}
