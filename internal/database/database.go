// Package database provides SQLite storage for the download history
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"addic7ed-downloader/pkg/models"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a history record does not exist
var ErrNotFound = errors.New("download not found")

const downloadColumns = `
	id, run_id, video_path, subtitle_path, query, episode_title, episode_url,
	language, release_name, infos, completeness, download_url, weight,
	status, error_message, created_at`

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// New opens the history database at dbPath, creating its directory and
// schema when missing
func New(dbPath string) (*DB, error) {
	connString := dbPath
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		connString = dbPath + "?_pragma=busy_timeout(30000)&_pragma=journal_mode(WAL)"
	}

	conn, err := sql.Open("sqlite", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// one connection keeps a ":memory:" database alive for the whole run
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS downloads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		video_path TEXT NOT NULL,
		subtitle_path TEXT NOT NULL,
		query TEXT NOT NULL DEFAULT '',
		episode_title TEXT NOT NULL DEFAULT '',
		episode_url TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT '',
		release_name TEXT NOT NULL DEFAULT '',
		infos TEXT NOT NULL DEFAULT '',
		completeness TEXT NOT NULL DEFAULT '',
		download_url TEXT NOT NULL DEFAULT '',
		weight REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_downloads_created_at ON downloads(created_at);
	CREATE INDEX IF NOT EXISTS idx_downloads_run_id ON downloads(run_id);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// CreateDownload stores a history record and sets its ID
func (db *DB) CreateDownload(download *models.Download) error {
	query := `
	INSERT INTO downloads (
		run_id, video_path, subtitle_path, query, episode_title, episode_url,
		language, release_name, infos, completeness, download_url, weight,
		status, error_message, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.conn.Exec(query,
		download.RunID, download.VideoPath, download.SubtitlePath,
		download.Query, download.EpisodeTitle, download.EpisodeURL,
		download.Language, download.Release, download.Infos,
		download.Completeness, download.DownloadURL, download.Weight,
		download.Status, download.ErrorMessage, download.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create download: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	download.ID = id
	return nil
}

// GetDownload retrieves a history record by ID
func (db *DB) GetDownload(id int64) (*models.Download, error) {
	query := `SELECT` + downloadColumns + ` FROM downloads WHERE id = ?`

	download, err := scanDownload(db.conn.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get download: %w", err)
	}

	return download, nil
}

// ListDownloads retrieves history records, newest first
func (db *DB) ListDownloads(limit, offset int) ([]*models.Download, error) {
	query := `SELECT` + downloadColumns + `
	FROM downloads
	ORDER BY created_at DESC, id DESC
	LIMIT ? OFFSET ?
	`

	rows, err := db.conn.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}
	defer rows.Close()

	var downloads []*models.Download
	for rows.Next() {
		download, err := scanDownload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan download: %w", err)
		}
		downloads = append(downloads, download)
	}

	return downloads, rows.Err()
}

// GetDownloadStats counts history records per status
func (db *DB) GetDownloadStats() (map[string]int, error) {
	rows, err := db.conn.Query(`SELECT status, COUNT(*) FROM downloads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to get download stats: %w", err)
	}
	defer rows.Close()

	stats := map[string]int{
		string(models.StatusCompleted): 0,
		string(models.StatusSkipped):   0,
		string(models.StatusFailed):    0,
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats[status] = count
	}

	return stats, rows.Err()
}

// DeleteOldDownloads removes history records older than the given age and
// returns how many were removed
func (db *DB) DeleteOldDownloads(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	result, err := db.conn.Exec("DELETE FROM downloads WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old downloads: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		slog.Info("Deleted old downloads", "count", rowsAffected, "cutoff", cutoff)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDownload(row rowScanner) (*models.Download, error) {
	var download models.Download
	err := row.Scan(
		&download.ID, &download.RunID, &download.VideoPath, &download.SubtitlePath,
		&download.Query, &download.EpisodeTitle, &download.EpisodeURL,
		&download.Language, &download.Release, &download.Infos,
		&download.Completeness, &download.DownloadURL, &download.Weight,
		&download.Status, &download.ErrorMessage, &download.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &download, nil
}
