package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"addic7ed-downloader/pkg/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently fetched subtitles",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(_ context.Context, _ []string) error {
			return a.history(limit)
		}),
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of records to show")
	return cmd
}

func (a *app) history(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}

	downloads, err := a.db.ListDownloads(limit, 0)
	if err != nil {
		return err
	}

	if len(downloads) == 0 {
		fmt.Fprintln(a.out, "No subtitles fetched yet.")
		return nil
	}

	fmt.Fprintln(a.out, renderHistory(downloads))

	stats, err := a.db.GetDownloadStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "completed: %d  skipped: %d  failed: %d\n",
		stats[string(models.StatusCompleted)],
		stats[string(models.StatusSkipped)],
		stats[string(models.StatusFailed)])

	return nil
}

func renderHistory(downloads []*models.Download) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"When", "Status", "Video", "Language", "Release", "Weight", "Error"})

	for _, d := range downloads {
		weight := ""
		if d.Status == models.StatusCompleted {
			weight = strconv.FormatFloat(d.Weight, 'f', 2, 64)
		}
		tw.AppendRow(table.Row{
			d.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(d.Status),
			filepath.Base(d.VideoPath),
			d.Language,
			d.Release,
			weight,
			d.ErrorMessage,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, WidthMax: 40},
	})

	return tw.Render()
}
