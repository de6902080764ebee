// Package logging builds the slog loggers used across shoebox.
//
// Two handler formats are supported: a console handler emitting
// "timestamp LEVEL component: message key=value" lines, and a JSON handler
// for machine consumption. Standardized field keys (component, run_id,
// source) keep records greppable; WithContext pulls run and file identity
// out of a context so per-file workers do not thread attrs by hand.
package logging
