// Package config loads, normalizes, and validates shoebox configuration.
//
// Configuration comes from a TOML file (default ~/.config/shoebox/config.toml,
// or shoebox.toml in the working directory). Defaults are applied first, then
// file values, then normalization (path expansion, extension canonicalization)
// and validation. All consumers receive a fully-resolved *Config; no package
// reads ambient process state for configuration.
package config
