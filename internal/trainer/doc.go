// Package trainer builds reference profiles from per-language corpus files.
//
// Each language is trained from a plain-text corpus named {lang}.txt in the
// configured corpus directory. The trainer produces the character n-gram
// profile for every language and, when a subword vocabulary is configured,
// the matching subword profile as well.
package trainer
