package main

import (
	"encoding/json"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"langid/internal/api"
	"langid/internal/trainer"
)

// writeJSON emits v as indented JSON on the command's stdout, for the
// --json flag shared by the read commands.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatScore renders a distance with the two decimals the scorer rounds to.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func newRoundedTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// rightAligned right-aligns the given 1-based numeric columns while keeping
// their headers flush left with the rest of the row.
func rightAligned(columns ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, number := range columns {
		configs = append(configs, table.ColumnConfig{
			Number:      number,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	return configs
}

// scoreTable lists the per-language distances, best candidate first.
func scoreTable(distribution []api.LanguageScore) string {
	tw := newRoundedTable()
	tw.AppendHeader(table.Row{"Language", "Score"})
	for _, score := range distribution {
		tw.AppendRow(table.Row{score.Lang, formatScore(score.Score)})
	}
	tw.SetColumnConfigs(rightAligned(2))
	return tw.Render()
}

// languageTable lists the trained languages with their hybrid readiness.
func languageTable(infos []api.LanguageInfo) string {
	tw := newRoundedTable()
	tw.AppendHeader(table.Row{"Code", "Name", "Hybrid"})
	for _, info := range infos {
		tw.AppendRow(table.Row{info.Code, info.Name, yesNo(info.Hybrid)})
	}
	return tw.Render()
}

// historyTable lists recorded identification requests, newest first.
func historyTable(entries []api.HistoryEntry) string {
	tw := newRoundedTable()
	tw.AppendHeader(table.Row{"When", "Prediction", "Model", "Score", "ms", "Sample"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.CreatedAt,
			entry.Prediction,
			entry.Model,
			formatScore(entry.Score),
			strconv.FormatInt(entry.DurationMS, 10),
			entry.Sample,
		})
	}
	tw.SetColumnConfigs(rightAligned(4, 5))
	return tw.Render()
}

// trainingTable summarizes one profile build run.
func trainingTable(reports []trainer.Report) string {
	tw := newRoundedTable()
	tw.AppendHeader(table.Row{"Language", "Char n-grams", "Subwords", "Corpus bytes"})
	for _, report := range reports {
		tw.AppendRow(table.Row{
			report.Lang,
			strconv.Itoa(report.CharCount),
			strconv.Itoa(report.SubwordCount),
			strconv.FormatInt(report.CorpusBytes, 10),
		})
	}
	tw.SetColumnConfigs(rightAligned(2, 3, 4))
	return tw.Render()
}

// profileTable lists per-language symbol counts for the profiles on disk.
func profileTable(codes []string, chars map[string][]string, subwords map[string][]int) string {
	tw := newRoundedTable()
	tw.AppendHeader(table.Row{"Language", "Char n-grams", "Subwords"})
	for _, code := range codes {
		tw.AppendRow(table.Row{code, strconv.Itoa(len(chars[code])), strconv.Itoa(len(subwords[code]))})
	}
	tw.SetColumnConfigs(rightAligned(2, 3))
	return tw.Render()
}

// requestCountTable lists stored history totals per language, following the
// trained-language order. Returns "" when no language has any requests.
func requestCountTable(langs []string, counts map[string]int) string {
	tw := newRoundedTable()
	tw.AppendHeader(table.Row{"Language", "Requests"})
	rows := 0
	for _, lang := range langs {
		count, ok := counts[lang]
		if !ok {
			continue
		}
		tw.AppendRow(table.Row{lang, strconv.Itoa(count)})
		rows++
	}
	if rows == 0 {
		return ""
	}
	tw.SetColumnConfigs(rightAligned(2))
	return tw.Render()
}
