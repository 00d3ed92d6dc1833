// Package cleanup prunes old download history records
package cleanup

import (
	"fmt"
	"log/slog"
	"time"
)

// HistoryStore removes history records older than a given age
type HistoryStore interface {
	DeleteOldDownloads(olderThan time.Duration) (int64, error)
}

// Service prunes the download history
type Service struct {
	store     HistoryStore
	retention time.Duration
	logger    *slog.Logger
}

// NewService creates a cleanup service keeping records for retention.
// A retention of zero or less keeps everything.
func NewService(store HistoryStore, retention time.Duration) *Service {
	return &Service{
		store:     store,
		retention: retention,
		logger:    slog.Default(),
	}
}

// PruneHistory deletes records older than the retention period and returns
// how many were removed
func (s *Service) PruneHistory() (int64, error) {
	if s.retention <= 0 {
		s.logger.Debug("History retention disabled, skipping prune")
		return 0, nil
	}

	deleted, err := s.store.DeleteOldDownloads(s.retention)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	s.logger.Debug("Pruned download history", "deleted", deleted, "retention", s.retention)
	return deleted, nil
}
