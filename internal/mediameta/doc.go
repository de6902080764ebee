// Package mediameta extracts capture metadata from media files through
// out-of-process tools: exiftool for photos, ffprobe for videos, and an
// optional image decoder probe for corruption rejection.
//
// The package depends only on each tool's exit status and its structured
// text output; specific fields (camera model, creation timestamp) are pulled
// out by pattern match, and a missing tag is never an error. Resolve always
// returns a usable Metadata record so a broken or unsupported file degrades
// to extension-based classification with absent capture fields.
package mediameta
