package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"langid/internal/config"
	"langid/internal/daemon"
	"langid/internal/history"
	"langid/internal/identify"
	"langid/internal/logging"
	"langid/internal/profiles"
	"langid/internal/tokenizer"
)

func buildDaemon(cfg *config.Config, logger *slog.Logger) (*daemon.Daemon, error) {
	set, err := profiles.Load(cfg.Paths.ProfilesDir, logger)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	var tok tokenizer.Tokenizer
	if path := strings.TrimSpace(cfg.Tokenizer.VocabPath); path != "" {
		wp, err := tokenizer.LoadWordPiece(path)
		if err != nil {
			return nil, fmt.Errorf("load tokenizer vocabulary: %w", err)
		}
		tok = wp
		logger.Info("tokenizer vocabulary loaded",
			logging.String("path", path),
			logging.Int("vocab_size", wp.VocabSize()))
	} else {
		logger.Warn("no tokenizer vocabulary configured, advanced model unavailable")
	}

	svc, err := identify.NewService(set.Chars(), set.Subwords(), tok, cfg.Identify.Alpha, identify.Options{
		NgramSize:   cfg.Identify.NgramSize,
		ProfileSize: cfg.Identify.ProfileSize,
		TopN:        cfg.Identify.TopN,
	})
	if err != nil {
		return nil, fmt.Errorf("build identify service: %w", err)
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.HistoryDBPath(), cfg.History.MaxEntries)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
	}

	return daemon.New(cfg, set, svc, store, logger)
}

func buildSocketPath(cfg *config.Config) string {
	if cfg == nil {
		return filepath.Join("", "langid.sock")
	}
	return filepath.Join(cfg.Paths.LogDir, "langid.sock")
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	return os.WriteFile(path, []byte(value), 0o644)
}
