package mediameta

import (
	"testing"
	"time"
)

const samplePhotoDump = `DateTimeOriginal: 2020:01:02 10:00:00
CreateDate: 2020:01:02 10:00:01
Model: Pixel
`

func TestParseExiftoolDump(t *testing.T) {
	tags := parseExiftoolDump([]byte(samplePhotoDump))

	if got := tags.cameraModel(); got != "Pixel" {
		t.Fatalf("camera model = %q", got)
	}

	ts := tags.captureTime()
	if ts == nil {
		t.Fatal("expected capture time")
	}
	want := time.Date(2020, 1, 2, 10, 0, 0, 0, time.Local)
	if !ts.Equal(want) {
		t.Fatalf("capture time = %v, want %v", ts, want)
	}
}

func TestParseExiftoolDumpFallsBackToCreateDate(t *testing.T) {
	tags := parseExiftoolDump([]byte("CreateDate: 2019:06:30 08:15:00\n"))
	ts := tags.captureTime()
	if ts == nil {
		t.Fatal("expected capture time from CreateDate")
	}
	if ts.Month() != time.June || ts.Year() != 2019 {
		t.Fatalf("capture time = %v", ts)
	}
}

func TestParseExiftoolDumpAbsentTags(t *testing.T) {
	tags := parseExiftoolDump([]byte("Warning: no readable metadata\n"))
	if tags.captureTime() != nil {
		t.Fatal("expected nil capture time")
	}
	if tags.cameraModel() != "" {
		t.Fatal("expected empty camera model")
	}
}

func TestParseExifTime(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2020:01:02 10:00:00", true},
		{"2021:07:04 23:59:59.123", true},
		{"2021:07:04 23:59:59+02:00", true},
		{"0000:00:00 00:00:00", false},
		{"not a time", false},
		{"", false},
	}
	for _, tc := range cases {
		got := parseExifTime(tc.input)
		if (got != nil) != tc.want {
			t.Errorf("parseExifTime(%q) = %v, want parsed=%v", tc.input, got, tc.want)
		}
	}
}

func TestScreenshotDetection(t *testing.T) {
	tags := parseExiftoolDump([]byte("UserComment: Screenshot\n"))
	if !tags.isScreenshot() {
		t.Fatal("expected screenshot via UserComment")
	}

	if !looksLikeScreenshot("/intake/Screenshot 2024-05-01 at 10.00.00.png") {
		t.Fatal("expected screenshot via filename")
	}
	if looksLikeScreenshot("/intake/IMG_0001.jpg") {
		t.Fatal("camera filename misdetected as screenshot")
	}
}

func TestParseExiftoolDumpKeepsFirstValue(t *testing.T) {
	dump := "Model: Pixel\nModel: Other\n"
	tags := parseExiftoolDump([]byte(dump))
	if got := tags.cameraModel(); got != "Pixel" {
		t.Fatalf("camera model = %q, want first occurrence", got)
	}
}
