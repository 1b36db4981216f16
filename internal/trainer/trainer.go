package trainer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"langid/internal/language"
	"langid/internal/logging"
	"langid/internal/profile"
	"langid/internal/profiles"
	"langid/internal/tokenizer"
)

// ErrNoProfilesBuilt indicates that no language produced a usable profile.
var ErrNoProfilesBuilt = errors.New("no profiles built")

// Options controls profile construction.
type Options struct {
	NgramSize   int
	ProfileSize int
}

func (o Options) withDefaults() Options {
	if o.NgramSize <= 0 {
		o.NgramSize = 3
	}
	if o.ProfileSize <= 0 {
		o.ProfileSize = 300
	}
	return o
}

// Report summarizes the trained profiles for one language.
type Report struct {
	Lang         string
	CharCount    int
	SubwordCount int
	CorpusBytes  int64
}

// Trainer reads corpus files and writes reference profiles.
type Trainer struct {
	corpusDir   string
	profilesDir string
	tok         tokenizer.Tokenizer
	opts        Options
	logger      *slog.Logger
}

// New constructs a trainer. The tokenizer may be nil, in which case only
// character profiles are produced.
func New(corpusDir, profilesDir string, tok tokenizer.Tokenizer, opts Options, logger *slog.Logger) *Trainer {
	return &Trainer{
		corpusDir:   corpusDir,
		profilesDir: profilesDir,
		tok:         tok,
		opts:        opts.withDefaults(),
		logger:      logging.WithComponent(logger, "trainer"),
	}
}

// Build trains profiles for the given languages. Languages whose corpus file
// is missing or contains no usable text are skipped with a warning. Build
// fails only when every language is skipped.
func (t *Trainer) Build(ctx context.Context, langs []string) ([]Report, error) {
	langs = language.NormalizeList(langs)
	if len(langs) == 0 {
		return nil, errors.New("no languages requested")
	}

	reports := make([]Report, 0, len(langs))
	for _, lang := range langs {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := t.buildLanguage(lang)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				t.logger.Warn("corpus file missing, skipping language",
					logging.String("lang", lang),
					logging.String("path", t.corpusPath(lang)))
				continue
			}
			if errors.Is(err, errEmptyCorpus) {
				t.logger.Warn("corpus contains no usable text, skipping language",
					logging.String("lang", lang),
					logging.String("path", t.corpusPath(lang)))
				continue
			}
			return reports, fmt.Errorf("train %s: %w", lang, err)
		}
		reports = append(reports, report)
		t.logger.Info("trained language profiles",
			logging.String("lang", lang),
			logging.Int("char_ngrams", report.CharCount),
			logging.Int("subwords", report.SubwordCount),
			logging.Int64("corpus_bytes", report.CorpusBytes))
	}

	if len(reports) == 0 {
		return nil, fmt.Errorf("%w from %s", ErrNoProfilesBuilt, t.corpusDir)
	}
	return reports, nil
}

var errEmptyCorpus = errors.New("empty corpus")

func (t *Trainer) corpusPath(lang string) string {
	return filepath.Join(t.corpusDir, lang+".txt")
}

func (t *Trainer) buildLanguage(lang string) (Report, error) {
	path := t.corpusPath(lang)
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}

	normalized := profile.Normalize(string(data))
	charProfile := profile.CharNgrams(normalized, t.opts.NgramSize, t.opts.ProfileSize)
	if len(charProfile) == 0 {
		return Report{}, errEmptyCorpus
	}

	if _, err := profiles.SaveChars(t.profilesDir, lang, charProfile); err != nil {
		return Report{}, err
	}

	report := Report{
		Lang:        lang,
		CharCount:   len(charProfile),
		CorpusBytes: int64(len(data)),
	}

	if t.tok != nil {
		// The tokenizer receives the raw corpus, not the normalized form:
		// identification encodes raw input, so the reference profiles must
		// come from the same token distribution.
		tokenIDs, err := t.tok.Encode(string(data))
		if err != nil {
			return Report{}, fmt.Errorf("tokenize corpus: %w", err)
		}
		subwordProfile := profile.Subwords(tokenIDs, t.opts.ProfileSize)
		if len(subwordProfile) > 0 {
			if _, err := profiles.SaveSubwords(t.profilesDir, lang, subwordProfile); err != nil {
				return Report{}, err
			}
			report.SubwordCount = len(subwordProfile)
		}
	}

	return report, nil
}
