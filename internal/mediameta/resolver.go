package mediameta

import (
	"context"
	"log/slog"

	"shoebox/internal/config"
	"shoebox/internal/logging"
)

// Resolver extracts capture metadata from media files via external tools.
// Resolution is best-effort by contract: probe failures degrade to a record
// with absent capture time and camera model, never an error.
type Resolver struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewResolver constructs a resolver using the configured tool binaries.
func NewResolver(cfg *config.Config, logger *slog.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "mediameta"),
	}
}

// Resolve returns the best-effort metadata for path. The hint is the type
// inferred from the file's extension; the resolved type may refine a photo
// into a screenshot but never errors out.
func (r *Resolver) Resolve(ctx context.Context, path string, hint MediaType) Metadata {
	meta := Metadata{Type: hint}

	switch hint {
	case TypePhoto:
		dump, err := exiftoolDump(ctx, r.cfg.ExiftoolBinary(), path)
		if err != nil {
			r.logger.Debug("exiftool probe failed", logging.String("path", path), logging.Error(err))
		} else {
			tags := parseExiftoolDump(dump)
			meta.CaptureTime = tags.captureTime()
			meta.CameraModel = tags.cameraModel()
			if tags.isScreenshot() {
				meta.Type = TypeScreenshot
			}
		}
		if meta.Type == TypePhoto && looksLikeScreenshot(path) {
			meta.Type = TypeScreenshot
		}
	case TypeVideo:
		probe, err := ffprobeFormat(ctx, r.cfg.FFprobeBinary(), path)
		if err != nil {
			r.logger.Debug("ffprobe probe failed", logging.String("path", path), logging.Error(err))
		} else {
			meta.CaptureTime = probe.creationTime()
			meta.CameraModel = probe.cameraModel()
		}
	}

	return meta
}

// IsCorrupted probes an image with the configured external tool and reports
// whether it is unreadable. A probe that cannot run at all is treated as not
// corrupted so a missing tool never blocks an import.
func (r *Resolver) IsCorrupted(ctx context.Context, path string) bool {
	corrupted, err := identifyProbe(ctx, r.cfg.IdentifyBinary(), path)
	if err != nil {
		r.logger.Debug("corruption probe unavailable", logging.String("path", path), logging.Error(err))
		return false
	}
	return corrupted
}
