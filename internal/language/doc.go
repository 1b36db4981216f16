// Package language provides unified language code normalization and mapping.
//
// All language-related conversions (ISO 639-1, ISO 639-2, display names) are
// consolidated here so the CLI, API, and trainer agree on how profile codes
// are named.
package language
