package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"langid/internal/api"
	"langid/internal/config"
	"langid/internal/identify"
	"langid/internal/ipc"
	"langid/internal/logging"
	"langid/internal/profiles"
	"langid/internal/tokenizer"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var modelFlag string
	var alphaFlag float64
	var localFlag bool
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "identify [text...]",
		Short: "Identify the language of a text sample",
		Long: `Identify the language of a text sample against the trained profiles.

The command talks to a running langid daemon when one is available and
falls back to loading the profiles directly otherwise. Use --local to skip
the daemon entirely.

Examples:
  langid identify "the quick brown fox jumps over the lazy dog"
  langid identify --model advanced --alpha 0.7 "der schnelle braune fuchs"
  langid identify --json "le rapide renard brun"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("text sample is required")
			}

			var alpha *float64
			if cmd.Flags().Changed("alpha") {
				alpha = &alphaFlag
			}

			resp, err := runIdentification(ctx, text, modelFlag, alpha, localFlag)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, resp)
			}
			printIdentifyResponse(cmd, resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Scoring model: simple or advanced (default: configured model)")
	cmd.Flags().Float64Var(&alphaFlag, "alpha", 0, "Character score weight for the advanced model (0.0 to 1.0)")
	cmd.Flags().BoolVar(&localFlag, "local", false, "Load profiles directly instead of asking the daemon")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the result as JSON")

	return cmd
}

func runIdentification(ctx *commandContext, text, model string, alpha *float64, local bool) (*api.IdentifyResponse, error) {
	if !local {
		client, err := ctx.dialClient()
		if err == nil {
			defer client.Close()
			return client.Identify(ipc.IdentifyRequest{Text: text, Model: model, Alpha: alpha})
		}
	}
	return identifyLocally(ctx, text, model, alpha)
}

func identifyLocally(ctx *commandContext, text, model string, alpha *float64) (*api.IdentifyResponse, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}

	svc, err := buildLocalService(cfg)
	if err != nil {
		return nil, err
	}

	resolved := identify.Model(cfg.Identify.DefaultModel)
	if strings.TrimSpace(model) != "" {
		resolved, err = identify.ParseModel(model)
		if err != nil {
			return nil, err
		}
	}
	weight := svc.DefaultAlpha()
	if alpha != nil {
		if *alpha < 0 || *alpha > 1 {
			return nil, fmt.Errorf("alpha must be between 0.0 and 1.0, got %v", *alpha)
		}
		weight = *alpha
	}

	started := time.Now()
	result, err := svc.Identify(text, resolved, weight)
	duration := time.Since(started)
	if err != nil {
		if isSoftIdentifyError(err) {
			return &api.IdentifyResponse{Error: err.Error()}, nil
		}
		return nil, err
	}

	resp := api.FromResult(result, string(resolved), weight, duration)
	return &resp, nil
}

func buildLocalService(cfg *config.Config) (*identify.Service, error) {
	set, err := profiles.Load(cfg.Paths.ProfilesDir, logging.NewNop())
	if err != nil {
		return nil, err
	}

	var tok tokenizer.Tokenizer
	if path := strings.TrimSpace(cfg.Tokenizer.VocabPath); path != "" {
		wp, err := tokenizer.LoadWordPiece(path)
		if err != nil {
			return nil, fmt.Errorf("load tokenizer vocabulary: %w", err)
		}
		tok = wp
	}

	return identify.NewService(set.Chars(), set.Subwords(), tok, cfg.Identify.Alpha, identify.Options{
		NgramSize:   cfg.Identify.NgramSize,
		ProfileSize: cfg.Identify.ProfileSize,
		TopN:        cfg.Identify.TopN,
	})
}

func isSoftIdentifyError(err error) bool {
	return errors.Is(err, identify.ErrInsufficientInput) ||
		errors.Is(err, identify.ErrInsufficientProfiles) ||
		errors.Is(err, identify.ErrNoScorableLanguages)
}

func printIdentifyResponse(cmd *cobra.Command, resp *api.IdentifyResponse) {
	stdout := cmd.OutOrStdout()
	if resp.Error != "" {
		fmt.Fprintf(stdout, "No prediction: %s\n", resp.Error)
		return
	}

	fmt.Fprintf(stdout, "Prediction: %s (model %s", resp.Prediction, resp.Model)
	if resp.Model == string(identify.ModelAdvanced) {
		fmt.Fprintf(stdout, ", alpha %.2f", resp.Alpha)
	}
	fmt.Fprintf(stdout, ", %dms)\n", resp.DurationMS)

	if len(resp.Distribution) > 0 {
		fmt.Fprintln(stdout, scoreTable(resp.Distribution))
	}
	if len(resp.TopFeatures) > 0 {
		fmt.Fprintf(stdout, "Top features: %s\n", strings.Join(resp.TopFeatures, ", "))
	}
}
