package downloader

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"addic7ed-downloader/internal/chooser"
	"addic7ed-downloader/internal/downloader/mocks"
	"addic7ed-downloader/internal/subtitle"
	"addic7ed-downloader/pkg/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePage struct {
	title    string
	sections []subtitle.Section
}

func (p fakePage) Title() string                { return p.title }
func (p fakePage) Sections() []subtitle.Section { return p.sections }

func pilotPage() fakePage {
	return fakePage{
		title: "Show - 01x02 - Pilot",
		sections: []subtitle.Section{
			{
				Release: "Version LOL, 0.00 MBs",
				Infos:   "Works with 720p",
				Rows: []subtitle.Row{
					{Language: "English", HasLanguage: true, Status: "Completed", Links: []string{"/updated/1/0"}},
					{Language: "French", HasLanguage: true, Status: "Completed", Links: []string{"/updated/1/1"}},
				},
			},
			{
				Release: "Version DIMENSION, 0.00 MBs",
				Infos:   "1080p",
				Rows: []subtitle.Row{
					{Language: "English", HasLanguage: true, Status: "Completed", Links: []string{"/updated/2/0"}},
				},
			},
		},
	}
}

type testWorker struct {
	worker    *Worker
	client    *mocks.MockSubtitleClient
	chooser   *mocks.MockChooser
	extractor *mocks.MockExtractorInterface
	db        *mocks.MockDatabaseInterface
	out       *bytes.Buffer
	records   []*models.Download
}

func newTestWorker(t *testing.T, languages ...string) *testWorker {
	t.Helper()
	ctrl := gomock.NewController(t)

	tw := &testWorker{
		client:    mocks.NewMockSubtitleClient(ctrl),
		chooser:   mocks.NewMockChooser(ctrl),
		extractor: mocks.NewMockExtractorInterface(ctrl),
		db:        mocks.NewMockDatabaseInterface(ctrl),
		out:       &bytes.Buffer{},
	}
	tw.worker = NewWorker(tw.client, tw.chooser, tw.extractor, tw.db, languages, tw.out)

	tw.db.EXPECT().CreateDownload(gomock.Any()).DoAndReturn(func(d *models.Download) error {
		tw.records = append(tw.records, d)
		return nil
	}).AnyTimes()

	return tw
}

// expectPilot sets up a search that finds the pilot episode and the page
// listing its versions
func (tw *testWorker) expectPilot(query string) {
	tw.client.EXPECT().Search(gomock.Any(), query).
		Return([]*subtitle.Episode{subtitle.NewEpisode("/serie/Show/1/2/Pilot", "Show - 01x02 - Pilot")}, nil)
	tw.chooser.EXPECT().Select(gomock.Any(), []string{"Show - 01x02 - Pilot"}).Return(0, nil)
	tw.client.EXPECT().EpisodePage(gomock.Any(), "/serie/Show/1/2/Pilot").Return(pilotPage(), nil)
}

func TestNewWorker(t *testing.T) {
	tw := newTestWorker(t, "english")
	require.NotNil(t, tw.worker)
	require.NotEmpty(t, tw.worker.RunID())
	require.Equal(t, []string{"english"}, tw.worker.languages)

	other := newTestWorker(t)
	require.NotEqual(t, tw.worker.RunID(), other.worker.RunID())
}

func TestWorker_ProcessFile(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "show.name.s01e02.720p.lol.mkv")
	tw := newTestWorker(t, "english")

	tw.expectPilot("show name 1x2")
	tw.chooser.EXPECT().Select(gomock.Any(), []string{"English - LOL 720p Completed"}).Return(0, nil)
	tw.client.EXPECT().Download(gomock.Any(), "/updated/1/0").Return([]byte("1\nHello\n"), nil)
	tw.extractor.EXPECT().IsArchive([]byte("1\nHello\n")).Return(false)

	err := tw.worker.ProcessFile(context.Background(), video, Options{})
	require.NoError(t, err)

	srt := filepath.Join(dir, "show.name.s01e02.720p.lol.srt")
	data, err := os.ReadFile(srt)
	require.NoError(t, err)
	require.Equal(t, "1\nHello\n", string(data))
	require.Contains(t, tw.out.String(), "Target SRT file: "+srt)

	require.Len(t, tw.records, 1)
	record := tw.records[0]
	require.Equal(t, models.StatusCompleted, record.Status)
	require.Equal(t, tw.worker.RunID(), record.RunID)
	require.Equal(t, video, record.VideoPath)
	require.Equal(t, srt, record.SubtitlePath)
	require.Equal(t, "show name 1x2", record.Query)
	require.Equal(t, "Show - 01x02 - Pilot", record.EpisodeTitle)
	require.Equal(t, "/serie/Show/1/2/Pilot", record.EpisodeURL)
	require.Equal(t, "English", record.Language)
	require.Equal(t, "LOL", record.Release)
	require.Equal(t, "/updated/1/0", record.DownloadURL)
	require.InDelta(t, 1+1+1, record.Weight, 1e-9)
	require.Empty(t, record.ErrorMessage)
	require.False(t, record.CreatedAt.IsZero())
}

func TestWorker_ProcessFileUnpacksArchives(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "show.s01e02.mkv")
	tw := newTestWorker(t)

	archive := []byte("PK\x03\x04zipped")
	tw.expectPilot("show 1x2")
	tw.chooser.EXPECT().Select(gomock.Any(), gomock.Len(3)).Return(2, nil)
	tw.client.EXPECT().Download(gomock.Any(), gomock.Any()).Return(archive, nil)
	tw.extractor.EXPECT().IsArchive(archive).Return(true)
	tw.extractor.EXPECT().Unpack(archive).Return([]byte("unpacked"), nil)

	err := tw.worker.ProcessFile(context.Background(), video, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "show.s01e02.srt"))
	require.NoError(t, err)
	require.Equal(t, "unpacked", string(data))
}

func TestWorker_ProcessFileUnpackError(t *testing.T) {
	dir := t.TempDir()
	tw := newTestWorker(t, "english")

	tw.expectPilot("show 1x2")
	tw.chooser.EXPECT().Select(gomock.Any(), gomock.Any()).Return(0, nil)
	tw.client.EXPECT().Download(gomock.Any(), gomock.Any()).Return([]byte("Rar!\x1a\x07broken"), nil)
	tw.extractor.EXPECT().IsArchive(gomock.Any()).Return(true)
	tw.extractor.EXPECT().Unpack(gomock.Any()).Return(nil, errors.New("corrupt archive"))

	err := tw.worker.ProcessFile(context.Background(), filepath.Join(dir, "show.s01e02.mkv"), Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "corrupt archive")
	require.NoFileExists(t, filepath.Join(dir, "show.s01e02.srt"))

	require.Len(t, tw.records, 1)
	require.Equal(t, models.StatusFailed, tw.records[0].Status)
	require.Contains(t, tw.records[0].ErrorMessage, "corrupt archive")
}

func TestWorker_ProcessFileOverrides(t *testing.T) {
	dir := t.TempDir()
	tw := newTestWorker(t, "french")

	// the release override points at DIMENSION and the language flag
	// replaces the configured french preference
	tw.expectPilot("custom query")
	tw.chooser.EXPECT().Select(gomock.Any(), []string{"English - DIMENSION 1080p Completed"}).Return(0, nil)
	tw.client.EXPECT().Download(gomock.Any(), "/updated/2/0").Return([]byte("sub"), nil)
	tw.extractor.EXPECT().IsArchive(gomock.Any()).Return(false)

	err := tw.worker.ProcessFile(context.Background(), filepath.Join(dir, "whatever.mkv"), Options{
		Query:     "custom query",
		Releases:  []string{"DIMENSION", "1080p"},
		Languages: []string{"english"},
	})
	require.NoError(t, err)
	require.Equal(t, "custom query", tw.records[0].Query)
}

func TestWorker_ProcessFileNoResults(t *testing.T) {
	dir := t.TempDir()
	tw := newTestWorker(t)

	tw.client.EXPECT().Search(gomock.Any(), "show 1x2").Return(nil, nil)

	err := tw.worker.ProcessFile(context.Background(), filepath.Join(dir, "show.s01e02.mkv"), Options{})
	require.ErrorIs(t, err, ErrNoResults)
	require.Contains(t, tw.out.String(), "No results")

	require.Len(t, tw.records, 1)
	require.Equal(t, models.StatusFailed, tw.records[0].Status)
}

func TestWorker_ProcessFileNoVersions(t *testing.T) {
	dir := t.TempDir()
	tw := newTestWorker(t)

	tw.client.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]*subtitle.Episode{subtitle.NewEpisode("/serie/Show/1/2/Pilot", "Show")}, nil)
	tw.chooser.EXPECT().Select(gomock.Any(), gomock.Any()).Return(0, nil)
	tw.client.EXPECT().EpisodePage(gomock.Any(), gomock.Any()).Return(fakePage{title: "Show"}, nil)

	err := tw.worker.ProcessFile(context.Background(), filepath.Join(dir, "show.s01e02.mkv"), Options{})
	require.ErrorIs(t, err, subtitle.ErrNoChoices)
}

func TestWorker_ProcessFileExisting(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		confirm     *bool
		wantSkipped bool
		wantOutput  string
	}{
		{
			name:        "ignore flag",
			opts:        Options{Ignore: true, Overwrite: true},
			wantSkipped: true,
			wantOutput:  "File exists. Ignoring.",
		},
		{
			name:        "user keeps the file",
			confirm:     new(bool),
			wantSkipped: true,
			wantOutput:  "File exists. Ignoring.",
		},
		{
			name:       "user replaces the file",
			confirm:    func() *bool { b := true; return &b }(),
			wantOutput: "File exists. Overwriting.",
		},
		{
			name:       "overwrite flag",
			opts:       Options{Overwrite: true},
			wantOutput: "File exists. Overwriting.",
		},
		{
			name:       "batch mode",
			opts:       Options{Batch: true},
			wantOutput: "File exists. Overwriting.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			srt := filepath.Join(dir, "show.s01e02.srt")
			require.NoError(t, os.WriteFile(srt, []byte("old"), 0o644))

			tw := newTestWorker(t)
			if tt.confirm != nil {
				tw.chooser.EXPECT().Confirm(gomock.Any(), "Overwrite?").Return(*tt.confirm, nil)
			}
			if !tt.wantSkipped {
				tw.expectPilot("show 1x2")
				tw.chooser.EXPECT().Select(gomock.Any(), gomock.Any()).Return(0, nil)
				tw.client.EXPECT().Download(gomock.Any(), gomock.Any()).Return([]byte("new"), nil)
				tw.extractor.EXPECT().IsArchive(gomock.Any()).Return(false)
			}

			err := tw.worker.ProcessFile(context.Background(), filepath.Join(dir, "show.s01e02.mkv"), tt.opts)
			require.NoError(t, err)
			require.Contains(t, tw.out.String(), tt.wantOutput)

			data, err := os.ReadFile(srt)
			require.NoError(t, err)
			require.Len(t, tw.records, 1)
			if tt.wantSkipped {
				require.Equal(t, "old", string(data))
				require.Equal(t, models.StatusSkipped, tw.records[0].Status)
			} else {
				require.Equal(t, "new", string(data))
				require.Equal(t, models.StatusCompleted, tw.records[0].Status)
			}
		})
	}
}

func TestWorker_ProcessFileSubtitleInput(t *testing.T) {
	dir := t.TempDir()
	srt := filepath.Join(dir, "show.s01e02.srt")
	require.NoError(t, os.WriteFile(srt, []byte("old"), 0o644))

	tw := newTestWorker(t)
	err := tw.worker.ProcessFile(context.Background(), srt, Options{Ignore: true})
	require.NoError(t, err)
	require.Equal(t, srt, tw.records[0].SubtitlePath)
	require.Equal(t, models.StatusSkipped, tw.records[0].Status)
}

func TestWorker_ProcessFileHistoryError(t *testing.T) {
	dir := t.TempDir()
	ctrl := gomock.NewController(t)

	client := mocks.NewMockSubtitleClient(ctrl)
	db := mocks.NewMockDatabaseInterface(ctrl)
	worker := NewWorker(client, mocks.NewMockChooser(ctrl), mocks.NewMockExtractorInterface(ctrl), db, nil, &bytes.Buffer{})

	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)
	db.EXPECT().CreateDownload(gomock.Any()).Return(errors.New("database is locked"))

	// history failures never hide the outcome of the file itself
	err := worker.ProcessFile(context.Background(), filepath.Join(dir, "show.s01e02.mkv"), Options{})
	require.ErrorIs(t, err, ErrNoResults)
}

func TestWorker_ProcessAll(t *testing.T) {
	dir := t.TempDir()
	tw := newTestWorker(t, "english")

	gomock.InOrder(
		tw.client.EXPECT().Search(gomock.Any(), "missing 1x1").Return(nil, nil),
		tw.client.EXPECT().Search(gomock.Any(), "show 1x2").
			Return([]*subtitle.Episode{subtitle.NewEpisode("/serie/Show/1/2/Pilot", "Show - 01x02 - Pilot")}, nil),
	)
	tw.chooser.EXPECT().Select(gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
	tw.client.EXPECT().EpisodePage(gomock.Any(), gomock.Any()).Return(pilotPage(), nil)
	tw.client.EXPECT().Download(gomock.Any(), gomock.Any()).Return([]byte("sub"), nil)
	tw.extractor.EXPECT().IsArchive(gomock.Any()).Return(false)

	files := []string{
		filepath.Join(dir, "missing.s01e01.mkv"),
		filepath.Join(dir, "show.s01e02.mkv"),
	}
	err := tw.worker.ProcessAll(context.Background(), files, Options{})
	require.Error(t, err)
	require.Equal(t, "1 of 2 files failed", err.Error())
	require.FileExists(t, filepath.Join(dir, "show.s01e02.srt"))

	require.Len(t, tw.records, 2)
	require.Equal(t, models.StatusFailed, tw.records[0].Status)
	require.Equal(t, models.StatusCompleted, tw.records[1].Status)
}

func TestWorker_ProcessAllUserAbort(t *testing.T) {
	dir := t.TempDir()
	tw := newTestWorker(t)

	tw.client.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]*subtitle.Episode{
		subtitle.NewEpisode("/serie/a", "A"),
		subtitle.NewEpisode("/serie/b", "B"),
	}, nil)
	tw.chooser.EXPECT().Select(gomock.Any(), []string{"A", "B"}).Return(0, chooser.ErrUserAbort)

	files := []string{
		filepath.Join(dir, "first.s01e01.mkv"),
		filepath.Join(dir, "second.s01e02.mkv"),
	}
	err := tw.worker.ProcessAll(context.Background(), files, Options{})
	require.ErrorIs(t, err, chooser.ErrUserAbort)

	// the aborted file is not recorded and the second one never starts
	require.Empty(t, tw.records)
}

func TestWorker_ProcessAllSuccess(t *testing.T) {
	tw := newTestWorker(t)

	dir := t.TempDir()
	srt := filepath.Join(dir, "show.s01e02.srt")
	require.NoError(t, os.WriteFile(srt, []byte("old"), 0o644))

	err := tw.worker.ProcessAll(context.Background(), []string{srt}, Options{Ignore: true})
	require.NoError(t, err)
	require.Contains(t, tw.out.String(), "------------------------------")
}
