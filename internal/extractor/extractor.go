// Package extractor unpacks subtitle files that the site serves inside
// ZIP or RAR archives
package extractor

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/nwaples/rardecode"
)

var (
	zipMagic = []byte("PK\x03\x04")
	rarMagic = []byte("Rar!\x1a\x07")
)

// SubtitleExtensions are the entries picked out of an archive
var SubtitleExtensions = []string{".srt", ".ass", ".ssa", ".sub", ".vtt"}

// ErrNoSubtitle is returned for archives without any subtitle entry
var ErrNoSubtitle = errors.New("archive holds no subtitle file")

// Extractor interface defines methods for unpacking downloaded payloads
type Extractor interface {
	Unpack(data []byte) ([]byte, error)
	IsArchive(data []byte) bool
}

// Service provides archive extraction services
type Service struct {
	logger *slog.Logger
}

// NewService creates a new extractor service
func NewService() *Service {
	return &Service{
		logger: slog.Default(),
	}
}

// IsArchive checks the payload for a ZIP or RAR signature
func (s *Service) IsArchive(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic) || bytes.HasPrefix(data, rarMagic)
}

// Unpack returns the first subtitle stored in an archive payload. Anything
// that is not an archive is returned unchanged.
func (s *Service) Unpack(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		s.logger.Debug("Unpacking ZIP payload", "size", len(data))
		return s.unpackZip(data)
	case bytes.HasPrefix(data, rarMagic):
		s.logger.Debug("Unpacking RAR payload", "size", len(data))
		return s.unpackRar(data)
	default:
		return data, nil
	}
}

func (s *Service) unpackZip(data []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open ZIP archive: %w", err)
	}

	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !isSubtitle(file.Name) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s in archive: %w", file.Name, err)
		}

		s.logger.Debug("Extracted subtitle from ZIP", "entry", file.Name)
		return content, nil
	}

	return nil, ErrNoSubtitle
}

func (s *Service) unpackRar(data []byte) ([]byte, error) {
	reader, err := rardecode.NewReader(bytes.NewReader(data), "")
	if err != nil {
		return nil, fmt.Errorf("failed to open RAR archive: %w", err)
	}

	for {
		header, err := reader.Next()
		if err == io.EOF {
			return nil, ErrNoSubtitle
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read RAR header: %w", err)
		}

		if header.IsDir || !isSubtitle(header.Name) {
			continue
		}

		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s in archive: %w", header.Name, err)
		}

		s.logger.Debug("Extracted subtitle from RAR", "entry", header.Name)
		return content, nil
	}
}

func isSubtitle(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range SubtitleExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
