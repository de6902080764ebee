package config

const (
	defaultIntakeDir  = "~/shoebox/intake"
	defaultArchiveDir = "~/shoebox/archive"
	defaultLogDir     = "~/.local/share/shoebox/logs"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

func defaultPhotoExtensions() []string {
	return []string{
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp",
		".heic", ".heif", ".dng", ".arw", ".cr2", ".nef", ".raf",
	}
}

func defaultVideoExtensions() []string {
	return []string{
		".mp4", ".mov", ".avi", ".mkv", ".m4v", ".mpg", ".mpeg", ".wmv", ".3gp",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			IntakeDir:  defaultIntakeDir,
			ArchiveDir: defaultArchiveDir,
			LogDir:     defaultLogDir,
		},
		Import: Import{
			Workers:         0,
			CheckCorruption: false,
			PhotoExtensions: defaultPhotoExtensions(),
			VideoExtensions: defaultVideoExtensions(),
		},
		Tools: Tools{
			Exiftool: "exiftool",
			FFprobe:  "ffprobe",
			Identify: "identify",
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
