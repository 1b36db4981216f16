package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"langid/internal/ipc"
)

func newDaemonCommands(ctx *commandContext) []*cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon and profile status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}

				stdout := cmd.OutOrStdout()
				colorize := shouldColorize(stdout)

				for _, line := range renderSectionHeader("Daemon", colorize) {
					fmt.Fprintln(stdout, line)
				}
				runningKind := statusWarn
				if status.Running {
					runningKind = statusOK
				}
				fmt.Fprintln(stdout, renderStatusLine("Running", runningKind, yesNo(status.Running), colorize))
				fmt.Fprintln(stdout, renderStatusLine("PID", statusInfo, strconv.Itoa(status.PID), colorize))
				fmt.Fprintln(stdout, renderStatusLine("Requests served", statusInfo, strconv.FormatInt(status.RequestsServed, 10), colorize))
				fmt.Fprintln(stdout, renderStatusLine("Lock file", statusInfo, status.LockPath, colorize))
				fmt.Fprintln(stdout)

				for _, line := range renderSectionHeader("Profiles", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderStatusLine("Directory", statusInfo, status.ProfilesDir, colorize))
				fmt.Fprintln(stdout, renderStatusLine("Languages", statusInfo, strconv.Itoa(len(status.Languages)), colorize))
				hybridKind := statusWarn
				if status.HybridReady {
					hybridKind = statusOK
				}
				fmt.Fprintln(stdout, renderStatusLine("Hybrid ready", hybridKind, yesNo(status.HybridReady), colorize))
				fmt.Fprintln(stdout, renderStatusLine("Default model", statusInfo, status.DefaultModel, colorize))

				if status.HistoryDBPath != "" {
					fmt.Fprintln(stdout)
					for _, line := range renderSectionHeader("History", colorize) {
						fmt.Fprintln(stdout, line)
					}
					fmt.Fprintln(stdout, renderStatusLine("Database", statusInfo, status.HistoryDBPath, colorize))
					fmt.Fprintln(stdout, renderStatusLine("Entries", statusInfo, strconv.Itoa(status.HistoryTotal), colorize))
					if counts := requestCountTable(status.Languages, status.HistoryByLang); counts != "" {
						fmt.Fprintln(stdout, counts)
					}
				}
				return nil
			})
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the langid daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Stop()
				if err != nil {
					return err
				}
				if resp.Stopped {
					fmt.Fprintln(cmd.OutOrStdout(), "Daemon stopped")
				}
				return nil
			})
		},
	}

	return []*cobra.Command{statusCmd, stopCmd}
}
