// Package importer drives the ingest pipeline: it discovers candidate
// files in the intake tree, digests and classifies them concurrently,
// and moves unique files into the archive under a single critical
// section shared between the digest index and the archive layout.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"shoebox/internal/config"
	"shoebox/internal/digestindex"
	"shoebox/internal/fileutil"
	"shoebox/internal/logging"
	"shoebox/internal/mediameta"
)

// Resolver supplies media metadata and the corruption probe. The
// production implementation shells out to exiftool, ffprobe, and
// identify; tests substitute a fake.
type Resolver interface {
	Resolve(ctx context.Context, path string, hint mediameta.MediaType) mediameta.Metadata
	IsCorrupted(ctx context.Context, path string) bool
}

// Importer moves files from the intake tree into the archive,
// deduplicating against the digest index.
type Importer struct {
	cfg      *config.Config
	index    *digestindex.Store
	resolver Resolver
	logger   *slog.Logger

	// mu spans the duplicate re-check, metadata resolution, path
	// allocation, move, and index insert for one file. The index and
	// the archive tree are only consistent with each other inside it.
	mu sync.Mutex
}

// New builds an importer with the production resolver.
func New(cfg *config.Config, index *digestindex.Store, logger *slog.Logger) *Importer {
	return NewWithDependencies(cfg, index, mediameta.NewResolver(cfg, logger), logger)
}

// NewWithDependencies builds an importer with an explicit resolver.
func NewWithDependencies(cfg *config.Config, index *digestindex.Store, resolver Resolver, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{
		cfg:      cfg,
		index:    index,
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "importer"),
	}
}

// Run executes one import pass over the intake tree. Per-file errors
// are recorded in the summary; only configuration problems, lock
// contention, and discovery failures abort the run.
func (imp *Importer) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	if err := imp.preflight(); err != nil {
		return nil, err
	}

	lock := flock.New(imp.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another import is already running (lock held at %s)", imp.cfg.LockPath())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			imp.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	summary := &Summary{RunID: runID}

	candidates, skipped, err := imp.discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan intake tree: %w", err)
	}
	for _, res := range skipped {
		summary.add(res)
	}

	imp.logger.Info("import started",
		logging.String(logging.FieldRunID, runID),
		logging.Int("candidates", len(candidates)),
		logging.Int("skipped", len(skipped)))

	results := imp.runPool(ctx, candidates)
	for _, res := range results {
		summary.add(res)
	}

	pruned, err := fileutil.PruneEmptyDirs(imp.cfg.Paths.IntakeDir)
	if err != nil {
		imp.logger.Warn("prune intake directories", logging.Error(err))
	}
	summary.PrunedDirs = pruned

	summary.Duration = time.Since(start)
	imp.logger.Info("import finished",
		logging.String(logging.FieldRunID, runID),
		logging.Int("archived", summary.Archived),
		logging.Int("duplicates", summary.Duplicates),
		logging.Int("skipped", summary.Skipped),
		logging.Int("corrupted", summary.Corrupted),
		logging.Int("failed", summary.Failed),
		logging.Duration("duration", summary.Duration))
	return summary, nil
}

func (imp *Importer) runPool(ctx context.Context, candidates []candidate) []Result {
	if len(candidates) == 0 {
		return nil
	}

	workers := imp.workerCount(len(candidates))
	jobs := make(chan candidate)
	out := make(chan Result, len(candidates))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range jobs {
				out <- imp.process(ctx, cand)
			}
		}()
	}

	for _, cand := range candidates {
		if ctx.Err() != nil {
			break
		}
		jobs <- cand
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]Result, 0, len(candidates))
	for res := range out {
		results = append(results, res)
	}
	return results
}

func (imp *Importer) workerCount(jobs int) int {
	workers := imp.cfg.Import.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
