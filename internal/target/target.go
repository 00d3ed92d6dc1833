// Package target decides where a subtitle is written and what happens when
// that file already exists
package target

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubtitleExt is the extension of written subtitle files
const SubtitleExt = ".srt"

// Policy tells what to do with an existing target file
type Policy int

const (
	// Ask confirms with the user before replacing the file
	Ask Policy = iota
	// Overwrite replaces the file without asking
	Overwrite
	// Ignore leaves the file alone and skips the video
	Ignore
)

func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Ignore:
		return "ignore"
	default:
		return "ask"
	}
}

// PolicyFor maps command line flags to a policy. Ignore wins over
// everything, batch mode implies overwrite.
func PolicyFor(overwrite, ignore, batch bool) Policy {
	switch {
	case ignore:
		return Ignore
	case overwrite || batch:
		return Overwrite
	default:
		return Ask
	}
}

// Path returns the subtitle path for input: the input itself when it is
// already a subtitle, otherwise the input with its extension replaced
func Path(input string) string {
	ext := filepath.Ext(input)
	if strings.EqualFold(ext, SubtitleExt) {
		return input
	}
	return strings.TrimSuffix(input, ext) + SubtitleExt
}

// Exists reports whether a regular file is present at path
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("target is a directory: %s", path)
	}
	return true, nil
}
