package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"langid/internal/logging"
	"langid/internal/profiles"
	"langid/internal/tokenizer"
	"langid/internal/trainer"
)

func newProfilesCommand(ctx *commandContext) *cobra.Command {
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage reference language profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	profilesCmd.AddCommand(newProfilesBuildCommand(ctx))
	profilesCmd.AddCommand(newProfilesListCommand(ctx))
	return profilesCmd
}

func newProfilesBuildCommand(ctx *commandContext) *cobra.Command {
	var corpusFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "build [languages...]",
		Short: "Build reference profiles from corpus files",
		Long: `Build character and subword reference profiles from per-language corpus
files. Each language reads <corpus-dir>/<lang>.txt; languages without a
corpus file are skipped. Without arguments the configured language list is
trained.

Subword profiles require a tokenizer vocabulary (vocab_path in the config
or the LANGID_VOCAB_PATH environment variable).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			corpusDir := cfg.Paths.CorpusDir
			if trimmed := strings.TrimSpace(corpusFlag); trimmed != "" {
				corpusDir = trimmed
			}

			langs := args
			if len(langs) == 0 {
				langs = cfg.Identify.Languages
			}

			var tok tokenizer.Tokenizer
			if path := strings.TrimSpace(cfg.Tokenizer.VocabPath); path != "" {
				wp, err := tokenizer.LoadWordPiece(path)
				if err != nil {
					return fmt.Errorf("load tokenizer vocabulary: %w", err)
				}
				tok = wp
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "No tokenizer vocabulary configured; building character profiles only")
			}

			tr := trainer.New(corpusDir, cfg.Paths.ProfilesDir, tok, trainer.Options{
				NgramSize:   cfg.Identify.NgramSize,
				ProfileSize: cfg.Identify.ProfileSize,
			}, logging.NewNop())

			reports, err := tr.Build(cmd.Context(), langs)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, reports)
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, trainingTable(reports))
			fmt.Fprintf(stdout, "Profiles written to %s\n", cfg.Paths.ProfilesDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusFlag, "corpus", "", "Corpus directory (default: configured corpus_dir)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the training report as JSON")
	return cmd
}

func newProfilesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the profiles on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			set, err := profiles.Load(cfg.Paths.ProfilesDir, logging.NewNop())
			if err != nil {
				if errors.Is(err, profiles.ErrNoProfiles) {
					fmt.Fprintf(stdout, "No profiles found in %s; run `langid profiles build` first\n", cfg.Paths.ProfilesDir)
					return nil
				}
				return err
			}

			fmt.Fprintln(stdout, profileTable(set.Languages(), set.Chars(), set.Subwords()))
			fmt.Fprintf(stdout, "Profile directory: %s\n", set.Dir())
			return nil
		},
	}
}
