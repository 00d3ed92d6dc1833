package downloader

import (
	"context"

	"addic7ed-downloader/internal/subtitle"
	"addic7ed-downloader/pkg/models"
)

// DatabaseInterface defines the history operations used by the worker
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
type DatabaseInterface interface {
	CreateDownload(download *models.Download) error
}

// SubtitleClient defines the subtitle site operations used by the worker
type SubtitleClient interface {
	Search(ctx context.Context, query string) ([]*subtitle.Episode, error)
	EpisodePage(ctx context.Context, url string) (subtitle.EpisodePage, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// Chooser defines how the worker asks the user to decide
type Chooser interface {
	Select(ctx context.Context, labels []string) (int, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// ExtractorInterface defines the archive unpacking operations
type ExtractorInterface interface {
	Unpack(data []byte) ([]byte, error)
	IsArchive(data []byte) bool
}
