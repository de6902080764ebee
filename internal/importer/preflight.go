package importer

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// preflight validates the intake and archive roots before any file is
// touched. Failures here abort the whole run.
func (imp *Importer) preflight() error {
	if err := imp.cfg.EnsureDirectories(); err != nil {
		return err
	}
	roots := map[string]string{
		"intake":  imp.cfg.Paths.IntakeDir,
		"archive": imp.cfg.Paths.ArchiveDir,
	}
	for name, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("%s root %s: %w", name, root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s root %s is not a directory", name, root)
		}
		if err := unix.Access(root, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
			return fmt.Errorf("%s root %s is not readable and writable: %w", name, root, err)
		}
	}
	return nil
}
