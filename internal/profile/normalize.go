package profile

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and strips everything that is not a lowercase
// Latin letter or a space, collapsing whitespace runs into single spaces and
// trimming the ends. Digits, punctuation, and non-Latin scripts are removed
// entirely; accented letters lowercase to accented forms and are dropped too.
// Known limitation carried over from the reference profiles: non-Latin-script
// languages normalize to nothing.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}
