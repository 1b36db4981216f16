// Package profiles loads and persists per-language reference profiles.
//
// A profile directory holds one JSON array per language and signal type:
// {lang}_chars.json with ranked n-gram strings and {lang}_subwords.json with
// ranked token ids, both most-frequent-first. The loaded Set is read-only and
// shared by every scoring call for the lifetime of the process.
package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"langid/internal/logging"
)

const (
	charSuffix    = "_chars.json"
	subwordSuffix = "_subwords.json"
)

// ErrNoProfiles indicates the profile directory holds no usable character
// profiles. Identification cannot be constructed without them.
var ErrNoProfiles = errors.New("no language profiles found")

// Set is an immutable reference profile collection.
type Set struct {
	dir      string
	chars    map[string][]string
	subwords map[string][]int
}

// Load reads every profile file in dir. Files that fail to parse are skipped
// with a warning, matching the tolerance of the offline builder: one corrupt
// profile should not take the whole service down. A character/subword
// language mismatch is logged as a warning; hybrid scoring later proceeds on
// the intersection.
func Load(dir string, logger *slog.Logger) (*Set, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read profile directory: %w", err)
	}

	set := &Set{
		dir:      dir,
		chars:    make(map[string][]string),
		subwords: make(map[string][]int),
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)
		switch {
		case strings.HasSuffix(name, charSuffix):
			lang := langCode(name, charSuffix)
			var prof []string
			if err := readJSON(path, &prof); err != nil {
				logger.Warn("skipping unreadable character profile",
					logging.String("path", path), logging.Error(err))
				continue
			}
			set.chars[lang] = prof
		case strings.HasSuffix(name, subwordSuffix):
			lang := langCode(name, subwordSuffix)
			var prof []int
			if err := readJSON(path, &prof); err != nil {
				logger.Warn("skipping unreadable subword profile",
					logging.String("path", path), logging.Error(err))
				continue
			}
			set.subwords[lang] = prof
		}
	}

	if len(set.chars) == 0 {
		return nil, fmt.Errorf("%w in %s (run 'langid profiles build' first)", ErrNoProfiles, dir)
	}

	if missing := set.mismatchedLanguages(); len(set.subwords) > 0 && len(missing) > 0 {
		logger.Warn("character and subword profile languages differ; hybrid scoring will skip the difference",
			logging.String("languages", strings.Join(missing, ", ")))
	}

	logger.Info("language profiles loaded",
		logging.Int("char_languages", len(set.chars)),
		logging.Int("subword_languages", len(set.subwords)),
		logging.String("dir", dir))
	return set, nil
}

// Dir returns the directory the set was loaded from.
func (s *Set) Dir() string { return s.dir }

// Chars returns the character profile map. Callers must treat it as
// read-only.
func (s *Set) Chars() map[string][]string { return s.chars }

// Subwords returns the subword profile map. Callers must treat it as
// read-only.
func (s *Set) Subwords() map[string][]int { return s.subwords }

// Languages returns the sorted codes that have a character profile.
func (s *Set) Languages() []string {
	codes := make([]string, 0, len(s.chars))
	for code := range s.chars {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// HybridReady reports whether at least one language carries both profile
// types.
func (s *Set) HybridReady() bool {
	for code := range s.chars {
		if _, ok := s.subwords[code]; ok {
			return true
		}
	}
	return false
}

// mismatchedLanguages lists codes present in exactly one of the two maps.
func (s *Set) mismatchedLanguages() []string {
	var missing []string
	for code := range s.chars {
		if _, ok := s.subwords[code]; !ok {
			missing = append(missing, code)
		}
	}
	for code := range s.subwords {
		if _, ok := s.chars[code]; !ok {
			missing = append(missing, code)
		}
	}
	sort.Strings(missing)
	return missing
}

func langCode(name, suffix string) string {
	return strings.TrimSuffix(name, suffix)
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

// SaveChars writes a character profile for a language into dir.
func SaveChars(dir, lang string, prof []string) (string, error) {
	return writeJSON(filepath.Join(dir, lang+charSuffix), prof)
}

// SaveSubwords writes a subword profile for a language into dir.
func SaveSubwords(dir, lang string, prof []int) (string, error) {
	return writeJSON(filepath.Join(dir, lang+subwordSuffix), prof)
}

func writeJSON(path string, value any) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create profile directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write profile: %w", err)
	}
	return path, nil
}
