// Package config loads, normalizes, and validates langid configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LANGID_VOCAB_PATH. The Config type centralizes every knob the daemon and CLI
// need, allowing profile directories and identification defaults to be
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
