package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTokenizer(); err != nil {
		return err
	}
	c.normalizeIdentify()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ProfilesDir) == "" {
		c.Paths.ProfilesDir = defaultProfilesDir
	}
	if c.Paths.ProfilesDir, err = expandPath(c.Paths.ProfilesDir); err != nil {
		return fmt.Errorf("paths.profiles_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CorpusDir) == "" {
		c.Paths.CorpusDir = defaultCorpusDir
	}
	if c.Paths.CorpusDir, err = expandPath(c.Paths.CorpusDir); err != nil {
		return fmt.Errorf("paths.corpus_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeTokenizer() error {
	c.Tokenizer.VocabPath = strings.TrimSpace(c.Tokenizer.VocabPath)
	if c.Tokenizer.VocabPath == "" {
		if value, ok := os.LookupEnv("LANGID_VOCAB_PATH"); ok {
			c.Tokenizer.VocabPath = strings.TrimSpace(value)
		}
	}
	if c.Tokenizer.VocabPath != "" {
		expanded, err := expandPath(c.Tokenizer.VocabPath)
		if err != nil {
			return fmt.Errorf("tokenizer.vocab_path: %w", err)
		}
		c.Tokenizer.VocabPath = expanded
	}
	return nil
}

func (c *Config) normalizeIdentify() {
	c.Identify.DefaultModel = strings.ToLower(strings.TrimSpace(c.Identify.DefaultModel))
	if c.Identify.DefaultModel == "" {
		c.Identify.DefaultModel = defaultModel
	}
	if len(c.Identify.Languages) == 0 {
		c.Identify.Languages = defaultLanguages()
		return
	}
	langs := make([]string, 0, len(c.Identify.Languages))
	seen := make(map[string]struct{}, len(c.Identify.Languages))
	for _, lang := range c.Identify.Languages {
		normalized := strings.ToLower(strings.TrimSpace(lang))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		langs = append(langs, normalized)
	}
	if len(langs) == 0 {
		langs = defaultLanguages()
	}
	c.Identify.Languages = langs
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
