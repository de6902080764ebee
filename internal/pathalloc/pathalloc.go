package pathalloc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shoebox/internal/mediameta"
)

// ErrFilenameExhausted is returned when every destination filename candidate
// for a file is already taken.
var ErrFilenameExhausted = errors.New("destination filename candidates exhausted")

// maxSuffix bounds the numbered collision candidates. Together with the two
// unnumbered candidates this gives 10,002 attempts per file.
const maxSuffix = 10000

// timestampLayout is the filename-safe capture time format.
const timestampLayout = "2006-01-02 15-04-05"

// unknownCamera is the directory segment used when no camera model was
// extracted.
const unknownCamera = "unknown camera"

// DestinationDir computes the archive-relative destination directory for a
// file: {typeDir}/{camera}/{year}/{month}. The capture time must already have
// had the caller's mtime fallback applied.
func DestinationDir(meta mediameta.Metadata, capture time.Time) string {
	camera := normalizeCamera(meta.CameraModel)
	return filepath.Join(
		meta.Type.ArchiveDir(),
		camera,
		fmt.Sprintf("%04d", capture.Year()),
		fmt.Sprintf("%02d", int(capture.Month())),
	)
}

// Allocate returns the archive-relative destination path for a file: the
// deterministic destination directory joined with the first filename
// candidate not present on disk. Candidates are tried in a fixed order, so
// allocation is deterministic for a given directory state.
//
// The caller must hold the pipeline's critical section; the on-disk existence
// check is only authoritative while no other worker can move files into the
// same directory.
func Allocate(archiveRoot string, meta mediameta.Metadata, capture time.Time, originalName string) (string, error) {
	dir := DestinationDir(meta, capture)
	stamp := capture.Format(timestampLayout)
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))

	for _, name := range candidateNames(stamp, base, ext) {
		taken, err := exists(filepath.Join(archiveRoot, dir, name))
		if err != nil {
			return "", err
		}
		if !taken {
			return filepath.Join(dir, name), nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrFilenameExhausted, stamp+ext, dir)
}

// candidateNames yields the ordered filename candidates: the bare timestamp,
// the timestamp plus original basename, then numbered variants 1..10000.
func candidateNames(stamp, base, ext string) []string {
	names := make([]string, 0, maxSuffix+2)
	names = append(names, stamp+ext)
	names = append(names, stamp+" "+base+ext)
	for n := 1; n <= maxSuffix; n++ {
		names = append(names, fmt.Sprintf("%s %s %d%s", stamp, base, n, ext))
	}
	return names
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat candidate: %w", err)
}

var cameraTitleCaser = cases.Title(language.Und)

// normalizeCamera converts a raw camera model tag into a stable directory
// segment: path-hostile runes become spaces, whitespace collapses, and words
// are title-cased so "NIKON D750" and "Nikon d750" land in one folder.
func normalizeCamera(model string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range strings.TrimSpace(model) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	result := strings.TrimSpace(cleaned.String())
	if result == "" {
		return unknownCamera
	}
	return cameraTitleCaser.String(result)
}
