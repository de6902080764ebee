package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateImport(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.IntakeDir) == "" {
		return errors.New("paths.intake_dir must be set")
	}
	if strings.TrimSpace(c.Paths.ArchiveDir) == "" {
		return errors.New("paths.archive_dir must be set")
	}
	if c.Paths.IntakeDir == c.Paths.ArchiveDir {
		return errors.New("paths.intake_dir and paths.archive_dir must differ")
	}
	// A nested arrangement would make the import walk its own output or
	// prune archive directories as emptied intake.
	if containsPath(c.Paths.IntakeDir, c.Paths.ArchiveDir) {
		return errors.New("paths.archive_dir must not be inside paths.intake_dir")
	}
	if containsPath(c.Paths.ArchiveDir, c.Paths.IntakeDir) {
		return errors.New("paths.intake_dir must not be inside paths.archive_dir")
	}
	for _, check := range []struct {
		key  string
		path string
	}{
		{"paths.intake_dir", c.Paths.IntakeDir},
		{"paths.archive_dir", c.Paths.ArchiveDir},
	} {
		info, err := os.Stat(check.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("%s: %w", check.key, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s: %q exists and is not a directory", check.key, check.path)
		}
	}
	return nil
}

// containsPath reports whether child lives under parent. Both paths are
// already absolute after normalization.
func containsPath(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "."
}

func (c *Config) validateImport() error {
	if c.Import.Workers < 0 {
		return errors.New("import.workers must be zero or positive")
	}
	if len(c.Import.PhotoExtensions) == 0 && len(c.Import.VideoExtensions) == 0 {
		return errors.New("at least one of import.photo_extensions or import.video_extensions must be non-empty")
	}
	for _, ext := range c.Import.PhotoExtensions {
		if c.IsVideoExtension(ext) {
			return fmt.Errorf("extension %q appears in both photo and video sets", ext)
		}
	}
	return nil
}
