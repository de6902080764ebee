package importer

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"shoebox/internal/logging"
	"shoebox/internal/mediameta"
)

// candidate is a file found in the intake tree with a supported
// extension, plus the media type hinted by that extension.
type candidate struct {
	path string
	hint mediameta.MediaType
}

// discover walks the intake tree and splits files into candidates and
// skipped results. Files without an extension are ignored outright;
// files with an unsupported extension are reported and left in place.
func (imp *Importer) discover(ctx context.Context) ([]candidate, []Result, error) {
	var (
		candidates []candidate
		skipped    []Result
	)
	err := filepath.WalkDir(imp.cfg.Paths.IntakeDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == "" {
			imp.logger.Debug("ignoring file without extension", logging.String(logging.FieldSource, path))
			return nil
		}
		hint := mediameta.ClassifyExtension(imp.cfg, ext)
		if hint == mediameta.TypeUnknown {
			skipped = append(skipped, Result{Source: path, Outcome: OutcomeSkipped})
			return nil
		}
		candidates = append(candidates, candidate{path: path, hint: hint})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	// WalkDir already yields lexical order within a directory; sorting
	// the full set keeps the run order stable across trees.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].path < candidates[j].path })
	return candidates, skipped, nil
}
