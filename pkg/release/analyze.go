package release

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// greedy on purpose: "[a] b [c]" loses everything from the first
	// opening bracket to the last closing one
	bracketed = regexp.MustCompile(`[\[(].*[\])]`)
	dontTypo  = regexp.MustCompile(`\bdont\b`)

	paddedEpisode = regexp.MustCompile(`\S*0+(\d+)[xe](\d+)`)
	bareNumber    = regexp.MustCompile(`\d+`)
)

// Query is the search derived from a video filename
type Query struct {
	// Text is sent to the remote search as-is
	Text string
	// Marker is the episode marker found in the filename ("1x2", "105"),
	// empty when the filename carries none
	Marker string
	// Release holds the words found after the episode marker
	Release TokenSet
}

// Analyze decomposes a video filename into a search query and the release
// token set found after the episode marker.
//
// The marker is either a zero padded season/episode pair such as s01e02
// or 01x02, rewritten as "1x2", or the first bare run of digits.
func Analyze(filename string) Query {
	base := strings.ToLower(filepath.Base(filename))
	base = RemoveExtension(base)
	base = NormalizeWhitespace(base)
	base = bracketed.ReplaceAllString(base, "")
	base = dontTypo.ReplaceAllString(base, "don't")

	title, rest, marker := base, base, ""
	if loc := paddedEpisode.FindStringSubmatchIndex(base); loc != nil {
		title, rest = base[:loc[0]], base[loc[1]:]
		marker = trimZeros(base[loc[2]:loc[3]]) + "x" + trimZeros(base[loc[4]:loc[5]])
	} else if loc := bareNumber.FindStringIndex(base); loc != nil {
		title, rest = base[:loc[0]], base[loc[1]:]
		marker = base[loc[0]:loc[1]]
	}

	return Query{
		Text:    NormalizeWhitespace(title + " " + marker),
		Marker:  marker,
		Release: StringSet(rest),
	}
}

// RemoveExtension drops everything from the last dot on. Names without a
// dot are returned unchanged.
func RemoveExtension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}

func trimZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
