package mediameta

import (
	"encoding/json"
	"testing"
	"time"
)

const sampleProbeJSON = `{
  "format": {
    "filename": "clip.mov",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "12.480000",
    "tags": {
      "creation_time": "2021-03-14T09:26:53.000000Z",
      "com.apple.quicktime.model": "iPhone 12"
    }
  }
}`

func TestFFprobeTags(t *testing.T) {
	var result ffprobeResult
	if err := json.Unmarshal([]byte(sampleProbeJSON), &result); err != nil {
		t.Fatal(err)
	}

	if got := result.cameraModel(); got != "iPhone 12" {
		t.Fatalf("camera model = %q", got)
	}

	ts := result.creationTime()
	if ts == nil {
		t.Fatal("expected creation time")
	}
	want := time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("creation time = %v, want %v", ts, want)
	}
}

func TestFFprobeTagCaseInsensitive(t *testing.T) {
	result := ffprobeResult{Format: ffprobeFormatInfo{Tags: map[string]string{
		"Creation_Time": "2019-06-01T12:00:00Z",
		"MODEL":         "GoPro HERO9",
	}}}

	if result.creationTime() == nil {
		t.Fatal("expected creation time despite tag casing")
	}
	if got := result.cameraModel(); got != "GoPro HERO9" {
		t.Fatalf("camera model = %q", got)
	}
}

func TestFFprobeMissingTags(t *testing.T) {
	var result ffprobeResult
	if err := json.Unmarshal([]byte(`{"format":{"filename":"x.mp4"}}`), &result); err != nil {
		t.Fatal(err)
	}
	if result.creationTime() != nil {
		t.Fatal("expected nil creation time")
	}
	if result.cameraModel() != "" {
		t.Fatal("expected empty camera model")
	}
}

func TestFFprobeZeroTime(t *testing.T) {
	result := ffprobeResult{Format: ffprobeFormatInfo{Tags: map[string]string{
		"creation_time": "0001-01-01T00:00:00Z",
	}}}
	if result.creationTime() != nil {
		t.Fatal("expected zero timestamp to be discarded")
	}
}
