package mediameta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// exiftoolDump executes exiftool against the provided path and returns the
// short-format tag dump. Only the tags the resolver pattern-matches are
// requested; absence of a tag is not an error.
func exiftoolDump(ctx context.Context, binary string, path string) ([]byte, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "exiftool"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("exiftool dump: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-s2",
		"-DateTimeOriginal", "-CreateDate", "-Model", "-UserComment",
		"--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("exiftool dump: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return output, nil
}

// exifTags holds the pattern-matched tag values from an exiftool dump.
type exifTags map[string]string

// parseExiftoolDump extracts "Tag: value" pairs from exiftool -s2 output.
// Lines that do not match the pattern are ignored.
func parseExiftoolDump(dump []byte) exifTags {
	tags := make(exifTags)
	scanner := bufio.NewScanner(bytes.NewReader(dump))
	for scanner.Scan() {
		line := scanner.Text()
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		if _, exists := tags[name]; exists {
			continue
		}
		tags[name] = value
	}
	return tags
}

// exifTimeLayouts covers the timestamp shapes exiftool emits: the plain EXIF
// form, subsecond variants, and zone-qualified variants seen on HEIC files.
var exifTimeLayouts = []string{
	"2006:01:02 15:04:05.999999999-07:00",
	"2006:01:02 15:04:05-07:00",
	"2006:01:02 15:04:05.999999999",
	"2006:01:02 15:04:05",
}

func parseExifTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range exifTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			// Cameras without a clock write all-zero timestamps.
			if parsed.Year() <= 1 {
				return nil
			}
			return &parsed
		}
	}
	return nil
}

func (t exifTags) captureTime() *time.Time {
	if ts := parseExifTime(t["DateTimeOriginal"]); ts != nil {
		return ts
	}
	return parseExifTime(t["CreateDate"])
}

func (t exifTags) cameraModel() string {
	return strings.TrimSpace(t["Model"])
}

func (t exifTags) isScreenshot() bool {
	return strings.EqualFold(strings.TrimSpace(t["UserComment"]), "screenshot")
}
