package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"langid/internal/api"
	"langid/internal/language"
	"langid/internal/logging"
	"langid/internal/profiles"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the trained languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := listLanguages(ctx)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, api.LanguagesResponse{Languages: infos})
			}

			stdout := cmd.OutOrStdout()
			if len(infos) == 0 {
				fmt.Fprintln(stdout, "No trained languages found; run `langid profiles build` first")
				return nil
			}
			fmt.Fprintln(stdout, languageTable(infos))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the list as JSON")
	return cmd
}

func listLanguages(ctx *commandContext) ([]api.LanguageInfo, error) {
	client, err := ctx.dialClient()
	if err == nil {
		defer client.Close()
		resp, rpcErr := client.Languages()
		if rpcErr != nil {
			return nil, rpcErr
		}
		return resp.Languages, nil
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	set, err := profiles.Load(cfg.Paths.ProfilesDir, logging.NewNop())
	if err != nil {
		if errors.Is(err, profiles.ErrNoProfiles) {
			return nil, nil
		}
		return nil, err
	}

	infos := make([]api.LanguageInfo, 0, len(set.Languages()))
	for _, code := range set.Languages() {
		_, hybrid := set.Subwords()[code]
		infos = append(infos, api.LanguageInfo{
			Code:   code,
			Name:   language.DisplayName(code),
			Hybrid: hybrid,
		})
	}
	return infos, nil
}
