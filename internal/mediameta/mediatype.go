package mediameta

import (
	"path/filepath"
	"strings"

	"shoebox/internal/config"
)

// MediaType classifies a candidate file for archive placement.
type MediaType string

const (
	TypePhoto      MediaType = "photo"
	TypeScreenshot MediaType = "screenshot"
	TypeVideo      MediaType = "video"
	TypeUnknown    MediaType = "unknown"
)

// ArchiveDir returns the top-level archive directory name for the type.
func (t MediaType) ArchiveDir() string {
	switch t {
	case TypePhoto:
		return "photos"
	case TypeScreenshot:
		return "screenshots"
	case TypeVideo:
		return "videos"
	default:
		return "unknown"
	}
}

// ClassifyExtension maps a lowercase dotted extension onto a media type using
// the configured extension sets.
func ClassifyExtension(cfg *config.Config, ext string) MediaType {
	switch {
	case cfg.IsPhotoExtension(ext):
		return TypePhoto
	case cfg.IsVideoExtension(ext):
		return TypeVideo
	default:
		return TypeUnknown
	}
}

// looksLikeScreenshot reports whether a photo's filename marks it as a screen
// capture. Phone and desktop screenshots overwhelmingly keep their generated
// "Screenshot ..." basename.
func looksLikeScreenshot(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	return strings.HasPrefix(base, "screenshot") || strings.HasPrefix(base, "screen shot")
}
