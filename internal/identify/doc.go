// Package identify scores text against per-language reference profiles and
// selects the closest language.
//
// Two implementations of the Identifier capability exist: Ngram compares a
// character n-gram profile of the input against character reference profiles,
// and Hybrid blends that distance with a subword token distance produced via
// an injected tokenizer. Service dispatches between them by model choice.
// All identifiers are immutable after construction; Identify calls carry no
// shared mutable state and may run concurrently.
//
// Short or unusable input, an empty reference set, and an empty hybrid
// language intersection are ordinary soft failures reported through sentinel
// errors, never panics.
package identify
