// Package profile implements the fingerprinting primitives behind language
// identification: text normalization, character n-gram and subword token
// profiles, and the out-of-place rank distance between two profiles.
//
// A profile is an ordered slice of symbols (n-gram strings or token ids),
// most frequent first, with ties broken by first occurrence in the source.
// Profiles are plain slices and are never mutated after construction, so they
// are safe to share across concurrent scoring calls.
package profile
