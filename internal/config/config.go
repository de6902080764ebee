package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	IntakeDir  string `toml:"intake_dir"`
	ArchiveDir string `toml:"archive_dir"`
	LogDir     string `toml:"log_dir"`
}

// Import contains configuration for the import pipeline.
type Import struct {
	Workers         int      `toml:"workers"`
	CheckCorruption bool     `toml:"check_corruption"`
	PhotoExtensions []string `toml:"photo_extensions"`
	VideoExtensions []string `toml:"video_extensions"`
}

// Tools names the external binaries used for metadata extraction and
// corruption probing.
type Tools struct {
	Exiftool string `toml:"exiftool"`
	FFprobe  string `toml:"ffprobe"`
	Identify string `toml:"identify"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for shoebox.
//
// Configuration sections by subsystem:
//   - Paths: intake (drop folder), archive, and log directories
//   - Import: worker pool size, extension sets, corruption probing
//   - Tools: external binary names for metadata probes
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Import  Import  `toml:"import"`
	Tools   Tools   `toml:"tools"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/shoebox/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and extension sets normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shoebox.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the intake, archive, index, and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.IntakeDir, c.Paths.ArchiveDir, c.IndexDir(), c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// IndexDir returns the directory under the archive root holding the digest
// index and run lock.
func (c *Config) IndexDir() string {
	return filepath.Join(c.Paths.ArchiveDir, ".shoebox")
}

// IndexPath returns the digest index database path.
func (c *Config) IndexPath() string {
	return filepath.Join(c.IndexDir(), "index.db")
}

// LockPath returns the single-run lock file path.
func (c *Config) LockPath() string {
	return filepath.Join(c.IndexDir(), "run.lock")
}

// ExiftoolBinary returns the exiftool executable name.
func (c *Config) ExiftoolBinary() string {
	if bin := strings.TrimSpace(c.Tools.Exiftool); bin != "" {
		return bin
	}
	return "exiftool"
}

// FFprobeBinary returns the ffprobe executable name.
func (c *Config) FFprobeBinary() string {
	if bin := strings.TrimSpace(c.Tools.FFprobe); bin != "" {
		return bin
	}
	return "ffprobe"
}

// IdentifyBinary returns the image corruption probe executable name.
func (c *Config) IdentifyBinary() string {
	if bin := strings.TrimSpace(c.Tools.Identify); bin != "" {
		return bin
	}
	return "identify"
}

// IsPhotoExtension reports whether a lowercase dotted extension is configured
// as a photo type.
func (c *Config) IsPhotoExtension(ext string) bool {
	return containsExtension(c.Import.PhotoExtensions, ext)
}

// IsVideoExtension reports whether a lowercase dotted extension is configured
// as a video type.
func (c *Config) IsVideoExtension(ext string) bool {
	return containsExtension(c.Import.VideoExtensions, ext)
}

func containsExtension(set []string, ext string) bool {
	ext = strings.ToLower(strings.TrimSpace(ext))
	for _, candidate := range set {
		if candidate == ext {
			return true
		}
	}
	return false
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
