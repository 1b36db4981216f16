package identify

import (
	"errors"
	"fmt"
)

// Soft failure kinds. These are ordinary outcomes the caller branches on with
// errors.Is; none of them indicates a defect in the engine.
var (
	// ErrInsufficientInput marks input whose profile came out empty, either
	// because the text was too short or because normalization stripped every
	// character. The wrapped message distinguishes the two cases.
	ErrInsufficientInput = errors.New("insufficient input")

	// ErrInsufficientProfiles marks an empty or unusable reference set.
	ErrInsufficientProfiles = errors.New("insufficient reference profiles")

	// ErrNoScorableLanguages marks a hybrid call where no language carried
	// both a character and a subword reference profile.
	ErrNoScorableLanguages = errors.New("no scorable languages")
)

func errNoLetters() error {
	return fmt.Errorf("%w: text contains no usable letters after normalization", ErrInsufficientInput)
}

func errTooShort(n int) error {
	return fmt.Errorf("%w: text is too short to build a %d-gram profile", ErrInsufficientInput, n)
}

func errNoTokens() error {
	return fmt.Errorf("%w: tokenizer produced no tokens for the text", ErrInsufficientInput)
}
