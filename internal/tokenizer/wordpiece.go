package tokenizer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

const (
	unkToken           = "[UNK]"
	continuationPrefix = "##"

	// Words longer than this are mapped straight to [UNK], matching the
	// BERT reference implementation.
	maxWordChars = 100
)

// specialTokens are vocabulary entries that mark sequence structure rather
// than text content. Encode never emits them.
var specialTokens = map[string]struct{}{
	"[PAD]":  {},
	"[CLS]":  {},
	"[SEP]":  {},
	"[MASK]": {},
}

// WordPiece is a greedy longest-match-first subword tokenizer over a fixed
// vocabulary, compatible with BERT-style vocab files (one token per line,
// line number = token id). It is immutable after construction and safe for
// concurrent use.
type WordPiece struct {
	vocab map[string]int
	unkID int
	size  int
}

// LoadWordPiece reads a vocabulary file and builds a tokenizer from it.
func LoadWordPiece(path string) (*WordPiece, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocab: %w", err)
	}
	defer file.Close()

	vocab := make(map[string]int)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	id := 0
	for scanner.Scan() {
		token := strings.TrimRight(scanner.Text(), "\r\n")
		if token == "" {
			id++
			continue
		}
		if _, dup := vocab[token]; !dup {
			vocab[token] = id
		}
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocab: %w", err)
	}
	return NewWordPiece(vocab)
}

// NewWordPiece builds a tokenizer from an in-memory vocabulary. The map is
// copied; later mutation of the argument does not affect the tokenizer.
func NewWordPiece(vocab map[string]int) (*WordPiece, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("wordpiece: empty vocabulary")
	}
	copied := make(map[string]int, len(vocab))
	for token, id := range vocab {
		if id < 0 {
			return nil, fmt.Errorf("wordpiece: negative id %d for token %q", id, token)
		}
		copied[token] = id
	}
	unkID, ok := copied[unkToken]
	if !ok {
		return nil, fmt.Errorf("wordpiece: vocabulary has no %s token", unkToken)
	}
	return &WordPiece{vocab: copied, unkID: unkID, size: len(copied)}, nil
}

// VocabSize returns the number of entries in the vocabulary.
func (w *WordPiece) VocabSize() int { return w.size }

// Encode implements Tokenizer. Text is split on whitespace with punctuation
// isolated into standalone tokens, then each word is decomposed greedily into
// the longest matching vocabulary pieces. Words with no decomposition encode
// as the unknown token id.
func (w *WordPiece) Encode(text string) ([]int, error) {
	words := splitWords(text)
	if len(words) == 0 {
		return nil, nil
	}
	ids := make([]int, 0, len(words))
	for _, word := range words {
		ids = append(ids, w.encodeWord(word)...)
	}
	return ids, nil
}

func (w *WordPiece) encodeWord(word string) []int {
	runes := []rune(word)
	if len(runes) > maxWordChars {
		return []int{w.unkID}
	}
	pieces := make([]int, 0, 4)
	start := 0
	for start < len(runes) {
		end := len(runes)
		matched := -1
		for end > start {
			candidate := string(runes[start:end])
			if start > 0 {
				candidate = continuationPrefix + candidate
			}
			if id, ok := w.lookup(candidate); ok {
				matched = id
				break
			}
			end--
		}
		if matched < 0 {
			// No decomposition covers the remainder; the whole word is
			// unknown per the WordPiece algorithm.
			return []int{w.unkID}
		}
		pieces = append(pieces, matched)
		start = end
	}
	return pieces
}

func (w *WordPiece) lookup(token string) (int, bool) {
	if _, special := specialTokens[token]; special {
		return 0, false
	}
	id, ok := w.vocab[token]
	return id, ok
}

// splitWords performs basic pre-tokenization: whitespace delimits words and
// every punctuation or symbol rune becomes its own token.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			words = append(words, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}
