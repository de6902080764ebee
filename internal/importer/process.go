package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"shoebox/internal/fileutil"
	"shoebox/internal/logging"
	"shoebox/internal/mediameta"
	"shoebox/internal/pathalloc"
)

// process runs one candidate through the full pipeline. Everything up
// to the duplicate fast path runs concurrently; the re-check, metadata
// resolution, path allocation, move, and index insert run inside the
// importer's critical section.
func (imp *Importer) process(ctx context.Context, cand candidate) Result {
	ctx = logging.WithSource(ctx, cand.path)
	log := logging.WithContext(ctx, imp.logger)

	digest, err := fileutil.DigestFile(cand.path)
	if err != nil {
		log.Error("digest failed", logging.Error(err))
		return Result{Source: cand.path, Outcome: OutcomeFailed, Err: err}
	}

	// Fast path: most duplicates are caught here without serializing.
	// The authoritative check repeats under the lock.
	known, err := imp.index.Exists(ctx, digest)
	if err != nil {
		log.Error("index lookup failed", logging.Error(err))
		return Result{Source: cand.path, Outcome: OutcomeFailed, Err: err}
	}
	if known {
		return imp.dropDuplicate(cand.path, log)
	}

	if imp.cfg.Import.CheckCorruption && cand.hint == mediameta.TypePhoto {
		if imp.resolver.IsCorrupted(ctx, cand.path) {
			log.Warn("corrupted image left in intake")
			return Result{Source: cand.path, Outcome: OutcomeCorrupted}
		}
	}

	imp.mu.Lock()
	defer imp.mu.Unlock()

	known, err = imp.index.Exists(ctx, digest)
	if err != nil {
		log.Error("index lookup failed", logging.Error(err))
		return Result{Source: cand.path, Outcome: OutcomeFailed, Err: err}
	}
	if known {
		// A concurrent worker archived identical content between the
		// fast path and here.
		return imp.dropDuplicate(cand.path, log)
	}

	meta := imp.resolver.Resolve(ctx, cand.path, cand.hint)
	capture, err := imp.captureTime(cand.path, meta)
	if err != nil {
		log.Error("stat for capture time fallback failed", logging.Error(err))
		return Result{Source: cand.path, Outcome: OutcomeFailed, Err: err}
	}

	rel, err := pathalloc.Allocate(imp.cfg.Paths.ArchiveDir, meta, capture, filepath.Base(cand.path))
	if err != nil {
		log.Error("path allocation failed", logging.Error(err))
		return Result{Source: cand.path, Outcome: OutcomeFailed, Err: err}
	}
	dest := filepath.Join(imp.cfg.Paths.ArchiveDir, rel)

	// Move before insert: a crash between the two leaves an archived
	// file the index does not know about, which a later run treats as
	// a fresh copy. The reverse order would leave an index entry whose
	// file does not exist.
	if err := fileutil.MoveFile(cand.path, dest); err != nil {
		log.Error("move into archive failed", logging.Error(err))
		return Result{Source: cand.path, Outcome: OutcomeFailed, Err: err}
	}
	if err := imp.index.Insert(ctx, rel, digest); err != nil {
		log.Error("file archived but not indexed; a future run will archive a second copy",
			logging.String("destination", dest), logging.Error(err))
		return Result{
			Source:  cand.path,
			Dest:    dest,
			Outcome: OutcomeFailed,
			Err:     fmt.Errorf("index insert after move: %w", err),
		}
	}

	log.Info("archived",
		logging.String("destination", dest),
		logging.String("type", string(meta.Type)))
	return Result{Source: cand.path, Dest: dest, Outcome: OutcomeArchived}
}

func (imp *Importer) dropDuplicate(path string, log *slog.Logger) Result {
	if err := os.Remove(path); err != nil {
		log.Error("failed to delete duplicate", logging.Error(err))
		return Result{Source: path, Outcome: OutcomeFailed, Err: err}
	}
	log.Info("duplicate deleted")
	return Result{Source: path, Outcome: OutcomeDuplicate}
}

// captureTime prefers embedded metadata and falls back to the file's
// modification time when the media carries none.
func (imp *Importer) captureTime(path string, meta mediameta.Metadata) (time.Time, error) {
	if meta.CaptureTime != nil {
		return *meta.CaptureTime, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
