// Package downloader fetches one subtitle per video file, asking the user
// to decide whenever the site offers more than one good candidate
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"addic7ed-downloader/internal/chooser"
	"addic7ed-downloader/internal/subtitle"
	"addic7ed-downloader/internal/target"
	"addic7ed-downloader/pkg/models"
	"addic7ed-downloader/pkg/release"

	"github.com/google/uuid"
)

var (
	// ErrNoResults is returned when the site search finds no episode
	ErrNoResults = errors.New("no results")

	errSkipped = errors.New("existing subtitle kept")
)

// Options are the per-run choices given on the command line
type Options struct {
	// Query replaces the query derived from the filename
	Query string
	// Releases replace the release tokens derived from the filename
	Releases []string
	// Languages in order of preference; the configured ones are used when empty
	Languages []string

	Overwrite bool
	Ignore    bool
	Batch     bool
}

// Worker processes video files one after another
type Worker struct {
	client    SubtitleClient
	chooser   Chooser
	extractor ExtractorInterface
	db        DatabaseInterface
	languages []string
	runID     string
	logger    *slog.Logger
	out       io.Writer
}

// NewWorker creates a worker. Languages are the default preferences used
// when a run does not name any.
func NewWorker(client SubtitleClient, ch Chooser, ext ExtractorInterface, db DatabaseInterface, languages []string, out io.Writer) *Worker {
	runID := uuid.NewString()
	return &Worker{
		client:    client,
		chooser:   ch,
		extractor: ext,
		db:        db,
		languages: languages,
		runID:     runID,
		logger:    slog.Default().With("run_id", runID),
		out:       out,
	}
}

// RunID identifies the history records written by this worker
func (w *Worker) RunID() string {
	return w.runID
}

// ProcessAll fetches a subtitle for every file. A failing file is reported
// and the next one is processed; a user abort stops the whole run.
func (w *Worker) ProcessAll(ctx context.Context, files []string, opts Options) error {
	failed := 0
	for _, file := range files {
		fmt.Fprintln(w.out, strings.Repeat("-", 30))

		err := w.ProcessFile(ctx, file, opts)
		if err == nil {
			continue
		}
		if errors.Is(err, chooser.ErrUserAbort) || ctx.Err() != nil {
			return err
		}

		failed++
		fmt.Fprintf(w.out, "Failed: %v\n", err)
		w.logger.Warn("Subtitle fetch failed", "file", file, "error", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// ProcessFile fetches the subtitle for a single video file and records the
// outcome in the history
func (w *Worker) ProcessFile(ctx context.Context, file string, opts Options) error {
	record := &models.Download{
		RunID:        w.runID,
		VideoPath:    file,
		SubtitlePath: target.Path(file),
		Status:       models.StatusFailed,
	}

	err := w.fetchSubtitle(ctx, record, opts)
	switch {
	case errors.Is(err, chooser.ErrUserAbort):
		return err
	case errors.Is(err, errSkipped):
		record.Status = models.StatusSkipped
		err = nil
	case err != nil:
		record.ErrorMessage = err.Error()
	default:
		record.Status = models.StatusCompleted
	}

	w.saveRecord(record)
	return err
}

func (w *Worker) fetchSubtitle(ctx context.Context, record *models.Download, opts Options) error {
	fmt.Fprintf(w.out, "Target SRT file: %s\n", record.SubtitlePath)

	if err := w.checkExisting(ctx, record.SubtitlePath, target.PolicyFor(opts.Overwrite, opts.Ignore, opts.Batch)); err != nil {
		return err
	}

	query := release.Analyze(record.SubtitlePath)
	if opts.Query != "" {
		query.Text = opts.Query
	}
	if len(opts.Releases) > 0 {
		query.Release = release.StringSet(strings.Join(opts.Releases, " "))
	}
	record.Query = query.Text

	w.logger.Info("Searching subtitles", "file", record.VideoPath, "query", query.Text, "release", query.Release.String())

	episodes, err := w.client.Search(ctx, query.Text)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		fmt.Fprintln(w.out, "No results")
		return fmt.Errorf("%w for %q", ErrNoResults, query.Text)
	}

	episode, err := choose(ctx, w.chooser, episodes)
	if err != nil {
		return err
	}
	record.EpisodeURL = episode.URL

	if err := episode.FetchVersions(ctx, w.client); err != nil {
		return err
	}
	record.EpisodeTitle = episode.Title

	versions, err := episode.FilterVersions(subtitle.Preferences{
		Languages: w.preferredLanguages(opts),
		Release:   query.Release,
		Completed: true,
	})
	if err != nil {
		return fmt.Errorf("no subtitle versions for %q: %w", episode.Title, err)
	}

	chosen, err := choose(ctx, w.chooser, versions)
	if err != nil {
		return err
	}
	record.Language = chosen.Language
	record.Release = chosen.Release
	record.Infos = chosen.Infos
	record.Completeness = chosen.Completeness
	record.DownloadURL = chosen.URL
	record.Weight = chosen.Weight

	data, err := w.client.Download(ctx, chosen.URL)
	if err != nil {
		return err
	}

	if w.extractor.IsArchive(data) {
		if data, err = w.extractor.Unpack(data); err != nil {
			return fmt.Errorf("failed to unpack %s: %w", chosen.URL, err)
		}
	}

	if err := os.WriteFile(record.SubtitlePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write subtitle: %w", err)
	}

	w.logger.Info("Subtitle saved",
		"file", record.SubtitlePath,
		"language", chosen.Language,
		"release", chosen.Release,
		"weight", chosen.Weight,
		"size", len(data))

	return nil
}

// checkExisting returns errSkipped when an existing subtitle must be kept
func (w *Worker) checkExisting(ctx context.Context, path string, policy target.Policy) error {
	exists, err := target.Exists(path)
	if err != nil || !exists {
		return err
	}

	fmt.Fprint(w.out, "File exists. ")

	replace := policy == target.Overwrite
	if policy == target.Ask {
		if replace, err = w.chooser.Confirm(ctx, "Overwrite?"); err != nil {
			return err
		}
	}

	if !replace {
		fmt.Fprintln(w.out, "Ignoring.")
		return errSkipped
	}

	fmt.Fprintln(w.out, "Overwriting.")
	return nil
}

func (w *Worker) preferredLanguages(opts Options) []string {
	if len(opts.Languages) > 0 {
		return opts.Languages
	}
	return w.languages
}

func (w *Worker) saveRecord(record *models.Download) {
	record.CreatedAt = time.Now()
	if err := w.db.CreateDownload(record); err != nil {
		w.logger.Warn("Failed to record download history", "file", record.VideoPath, "error", err)
	}
}

// choose shows items by their String form and returns the one picked
func choose[T fmt.Stringer](ctx context.Context, c Chooser, items []T) (T, error) {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.String()
	}

	idx, err := c.Select(ctx, labels)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[idx], nil
}
