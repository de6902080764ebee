package pathalloc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shoebox/internal/mediameta"
)

var captureTime = time.Date(2020, 1, 2, 10, 0, 0, 0, time.Local)

func photoMeta(camera string) mediameta.Metadata {
	return mediameta.Metadata{Type: mediameta.TypePhoto, CameraModel: camera}
}

func TestDestinationDir(t *testing.T) {
	cases := []struct {
		meta mediameta.Metadata
		want string
	}{
		{photoMeta("Pixel"), filepath.Join("photos", "Pixel", "2020", "01")},
		{photoMeta(""), filepath.Join("photos", "unknown camera", "2020", "01")},
		{photoMeta("NIKON D750"), filepath.Join("photos", "Nikon D750", "2020", "01")},
		{mediameta.Metadata{Type: mediameta.TypeVideo}, filepath.Join("videos", "unknown camera", "2020", "01")},
		{mediameta.Metadata{Type: mediameta.TypeScreenshot}, filepath.Join("screenshots", "unknown camera", "2020", "01")},
	}
	for _, tc := range cases {
		if got := DestinationDir(tc.meta, captureTime); got != tc.want {
			t.Errorf("DestinationDir(%+v) = %q, want %q", tc.meta, got, tc.want)
		}
	}
}

func TestAllocateFirstCandidate(t *testing.T) {
	root := t.TempDir()

	got, err := Allocate(root, photoMeta("Pixel"), captureTime, "IMG_0001.JPG")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	want := filepath.Join("photos", "Pixel", "2020", "01", "2020-01-02 10-00-00.jpg")
	if got != want {
		t.Fatalf("allocated %q, want %q", got, want)
	}
}

func TestAllocateDeterministic(t *testing.T) {
	root := t.TempDir()

	first, err := Allocate(root, photoMeta("Pixel"), captureTime, "a.jpg")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Allocate(root, photoMeta("Pixel"), captureTime, "a.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("allocation not deterministic: %q vs %q", first, second)
	}
}

func occupy(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAllocateCollisionChain(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join("photos", "Pixel", "2020", "01")

	// Occupy candidates 1-3 for this metadata/basename.
	occupy(t, root, filepath.Join(dir, "2020-01-02 10-00-00.jpg"))
	occupy(t, root, filepath.Join(dir, "2020-01-02 10-00-00 a.jpg"))
	occupy(t, root, filepath.Join(dir, "2020-01-02 10-00-00 a 1.jpg"))

	got, err := Allocate(root, photoMeta("Pixel"), captureTime, "a.jpg")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "2020-01-02 10-00-00 a 2.jpg")
	if got != want {
		t.Fatalf("allocated %q, want %q", got, want)
	}
}

func TestAllocateSecondCandidateUsesBasename(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join("photos", "Pixel", "2020", "01")

	occupy(t, root, filepath.Join(dir, "2020-01-02 10-00-00.jpg"))

	got, err := Allocate(root, photoMeta("Pixel"), captureTime, "holiday.jpg")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "2020-01-02 10-00-00 holiday.jpg")
	if got != want {
		t.Fatalf("allocated %q, want %q", got, want)
	}
}

func TestAllocateExhaustion(t *testing.T) {
	if testing.Short() {
		t.Skip("creates 10002 files")
	}
	root := t.TempDir()
	dir := filepath.Join("photos", "Pixel", "2020", "01")
	if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
		t.Fatal(err)
	}

	occupyFast := func(name string) {
		if err := os.WriteFile(filepath.Join(root, dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	occupyFast("2020-01-02 10-00-00.jpg")
	occupyFast("2020-01-02 10-00-00 a.jpg")
	for n := 1; n <= 10000; n++ {
		occupyFast(fmt.Sprintf("2020-01-02 10-00-00 a %d.jpg", n))
	}

	_, err := Allocate(root, photoMeta("Pixel"), captureTime, "a.jpg")
	if !errors.Is(err, ErrFilenameExhausted) {
		t.Fatalf("expected ErrFilenameExhausted, got %v", err)
	}
}

func TestNormalizeCamera(t *testing.T) {
	cases := map[string]string{
		"Pixel":          "Pixel",
		"NIKON D750":     "Nikon D750",
		"  iPhone 12  ":  "Iphone 12",
		"DMC-GH4":        "Dmc Gh4",
		"":               "unknown camera",
		"///":            "unknown camera",
		"Canon EOS 70D?": "Canon Eos 70D",
	}
	for input, want := range cases {
		if got := normalizeCamera(input); got != want {
			t.Errorf("normalizeCamera(%q) = %q, want %q", input, got, want)
		}
	}
}
