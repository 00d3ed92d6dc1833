package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"addic7ed-downloader/internal/addic7ed"
	"addic7ed-downloader/internal/chooser"
	"addic7ed-downloader/internal/cleanup"
	"addic7ed-downloader/internal/config"
	"addic7ed-downloader/internal/database"
	"addic7ed-downloader/internal/downloader"
	"addic7ed-downloader/internal/extractor"

	"github.com/spf13/cobra"
)

// app holds what every command needs once configuration is loaded
type app struct {
	in  io.Reader
	out io.Writer

	cfg *config.Config
	db  *database.DB
}

// open loads the configuration, opens the history database and prunes
// records past their retention
func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogging(strings.ToLower(cfg.LogLevel))

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if _, err := cleanup.NewService(db, cfg.HistoryRetention).PruneHistory(); err != nil {
		slog.Warn("History cleanup failed", "error", err)
	}

	a.cfg = cfg
	a.db = db
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
	a.db = nil
}

// withApp runs fn between open and close
func (a *app) withApp(fn func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(); err != nil {
			return err
		}
		defer a.close()
		return fn(cmd.Context(), args)
	}
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}
	var opts downloader.Options

	rootCmd := &cobra.Command{
		Use:           "addic7ed-downloader [flags] file...",
		Short:         "Download subtitles for video files from addic7ed",
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: a.withApp(func(ctx context.Context, files []string) error {
			return a.download(ctx, files, opts)
		}),
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Query, "query", "q", "", "Search query instead of the one derived from the filename")
	flags.StringArrayVarP(&opts.Releases, "release", "r", nil, "Release words instead of the ones derived from the filename (repeatable)")
	flags.BoolVarP(&opts.Overwrite, "overwrite", "o", false, "Replace existing subtitles without asking")
	flags.BoolVarP(&opts.Ignore, "ignore", "i", false, "Skip videos that already have a subtitle")
	flags.StringArrayVarP(&opts.Languages, "language", "l", nil, "Preferred language, most wanted first (repeatable)")
	flags.BoolVarP(&opts.Batch, "batch", "b", false, "Never prompt, always take the best choice")

	rootCmd.AddCommand(newHistoryCommand(a))

	return rootCmd
}

func (a *app) download(ctx context.Context, files []string, opts downloader.Options) error {
	client, err := addic7ed.New(a.cfg.BaseURL, a.cfg.HTTPTimeout, a.cfg.UserAgent)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	worker := downloader.NewWorker(
		addic7ed.NewSite(client),
		chooser.New(a.in, a.out, opts.Batch),
		extractor.NewService(),
		a.db,
		a.cfg.Languages,
		a.out,
	)

	slog.Info("Starting subtitle run", "run_id", worker.RunID(), "files", len(files), "batch", opts.Batch)
	return worker.ProcessAll(ctx, files, opts)
}
