// Package models defines the data structures used throughout the application
package models

import (
	"time"
)

// DownloadStatus represents how processing a video file ended
type DownloadStatus string

const (
	StatusCompleted DownloadStatus = "completed"
	StatusSkipped   DownloadStatus = "skipped"
	StatusFailed    DownloadStatus = "failed"
)

// Download is the history record of one processed video file
type Download struct {
	ID           int64          `json:"id" db:"id"`
	RunID        string         `json:"run_id" db:"run_id"`
	VideoPath    string         `json:"video_path" db:"video_path"`
	SubtitlePath string         `json:"subtitle_path" db:"subtitle_path"`
	Query        string         `json:"query" db:"query"`
	EpisodeTitle string         `json:"episode_title" db:"episode_title"`
	EpisodeURL   string         `json:"episode_url" db:"episode_url"`
	Language     string         `json:"language" db:"language"`
	Release      string         `json:"release" db:"release_name"`
	Infos        string         `json:"infos" db:"infos"`
	Completeness string         `json:"completeness" db:"completeness"`
	DownloadURL  string         `json:"download_url" db:"download_url"`
	Weight       float64        `json:"weight" db:"weight"`
	Status       DownloadStatus `json:"status" db:"status"`
	ErrorMessage string         `json:"error_message" db:"error_message"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

