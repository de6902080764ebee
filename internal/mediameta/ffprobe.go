package mediameta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ffprobeResult represents the parsed container-level output from an ffprobe
// inspection. Only format tags matter for capture metadata.
type ffprobeResult struct {
	Format ffprobeFormatInfo `json:"format"`
}

type ffprobeFormatInfo struct {
	Filename   string            `json:"filename"`
	FormatName string            `json:"format_name"`
	Duration   string            `json:"duration"`
	Tags       map[string]string `json:"tags"`
}

// ffprobeFormat executes ffprobe against the provided path and decodes the
// JSON response.
func ffprobeFormat(ctx context.Context, binary string, path string) (ffprobeResult, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return ffprobeResult{}, errors.New("ffprobe format: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return ffprobeResult{}, fmt.Errorf("ffprobe format: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result ffprobeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return ffprobeResult{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// tag performs a case-insensitive lookup; containers disagree on tag casing.
func (r ffprobeResult) tag(name string) string {
	for key, value := range r.Format.Tags {
		if strings.EqualFold(key, name) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

var ffprobeTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05",
}

func (r ffprobeResult) creationTime() *time.Time {
	value := r.tag("creation_time")
	if value == "" {
		return nil
	}
	for _, layout := range ffprobeTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			if parsed.Year() <= 1 {
				return nil
			}
			local := parsed.Local()
			return &local
		}
	}
	return nil
}

func (r ffprobeResult) cameraModel() string {
	for _, name := range []string{"com.apple.quicktime.model", "model"} {
		if value := r.tag(name); value != "" {
			return value
		}
	}
	return ""
}
