package mediameta

import (
	"testing"

	"shoebox/internal/config"
)

func TestClassifyExtension(t *testing.T) {
	cfg := config.Default()

	cases := map[string]MediaType{
		".jpg":  TypePhoto,
		".JPEG": TypePhoto,
		".heic": TypePhoto,
		".mov":  TypeVideo,
		".mp4":  TypeVideo,
		".txt":  TypeUnknown,
		"":      TypeUnknown,
	}
	for ext, want := range cases {
		if got := ClassifyExtension(&cfg, ext); got != want {
			t.Errorf("ClassifyExtension(%q) = %v, want %v", ext, got, want)
		}
	}
}

func TestArchiveDir(t *testing.T) {
	cases := map[MediaType]string{
		TypePhoto:      "photos",
		TypeScreenshot: "screenshots",
		TypeVideo:      "videos",
		TypeUnknown:    "unknown",
	}
	for typ, want := range cases {
		if got := typ.ArchiveDir(); got != want {
			t.Errorf("%v.ArchiveDir() = %q, want %q", typ, got, want)
		}
	}
}
