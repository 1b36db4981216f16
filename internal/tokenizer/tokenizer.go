// Package tokenizer defines the subword tokenizer capability consumed by
// hybrid identification and a WordPiece implementation backed by a plain
// vocabulary file. The scoring core only depends on the Tokenizer interface,
// so any encoder that maps text to token ids can be substituted.
package tokenizer

// Tokenizer maps raw (non-normalized) text to an ordered sequence of
// non-negative token ids. Implementations must not emit sequence markers such
// as classifier or separator tokens; the ids describe the text content only.
type Tokenizer interface {
	Encode(text string) ([]int, error)
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(text string) ([]int, error)

// Encode implements Tokenizer.
func (f Func) Encode(text string) ([]int, error) { return f(text) }
