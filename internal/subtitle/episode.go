package subtitle

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	versionPrefix = regexp.MustCompile(`(?i)version `)
	worksWith     = regexp.MustCompile(`(?i)^\s*(?:should\s+)?works?\s+with\s+`)
)

// Link variants offered for a subtitle row, most wanted first
var downloadVariants = []string{"updated", "original"}

// Row is one subtitle line of a version section, as found on the page
type Row struct {
	Language    string
	HasLanguage bool
	// Status is the raw text next to the language cell ("95% Completed")
	Status string
	Links  []string
}

// Section is a release block of an episode page
type Section struct {
	// Release is the raw heading, e.g. "Version LOL, 0.00 MBs"
	Release string
	// Infos is the raw compatibility note, e.g. "Works with DIMENSION"
	Infos string
	Rows  []Row
}

// EpisodePage is the parsed episode page the versions are read from
type EpisodePage interface {
	Title() string
	Sections() []Section
}

// PageSource loads episode pages
type PageSource interface {
	EpisodePage(ctx context.Context, url string) (EpisodePage, error)
}

// Episode is a search result whose versions are loaded on demand
type Episode struct {
	URL      string
	Title    string
	versions []*Version
}

// NewEpisode creates an episode with no versions loaded yet
func NewEpisode(url, title string) *Episode {
	return &Episode{URL: url, Title: title}
}

// Equal reports whether both episodes share URL and title
func (e *Episode) Equal(other *Episode) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.URL == other.URL && e.Title == other.Title
}

func (e *Episode) String() string {
	return e.Title
}

// Versions returns the versions loaded so far
func (e *Episode) Versions() []*Version {
	return e.versions
}

// AddVersion appends a version to the episode
func (e *Episode) AddVersion(v *Version) {
	e.versions = append(e.versions, v)
}

// FetchVersions loads the episode page and reads one version per usable
// subtitle row. It does nothing once versions are present.
func (e *Episode) FetchVersions(ctx context.Context, src PageSource) error {
	if len(e.versions) > 0 {
		return nil
	}

	page, err := src.EpisodePage(ctx, e.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch episode page: %w", err)
	}

	if title := strings.TrimSpace(page.Title()); title != "" {
		e.Title = title
	}

	for _, section := range page.Sections() {
		releaseName := cleanRelease(section.Release)
		infos := cleanInfos(section.Infos)

		for _, row := range section.Rows {
			if !row.HasLanguage {
				continue
			}

			download, ok := pickDownload(row.Links)
			if !ok {
				continue
			}

			e.AddVersion(NewVersion(download, row.Language, releaseName, infos, firstWord(row.Status)))
		}
	}

	return nil
}

// FilterVersions scores every version against prefs and returns the ones
// within SelectionTolerance of the best score, ordered by display string
func (e *Episode) FilterVersions(prefs Preferences) ([]ScoredVersion, error) {
	scored := make([]ScoredVersion, 0, len(e.versions))
	for _, v := range e.versions {
		scored = append(scored, ScoredVersion{Version: v, Weight: Score(v, prefs)})
	}
	return SelectBest(scored)
}

func cleanRelease(heading string) string {
	name, _, _ := strings.Cut(heading, ",")
	return strings.TrimSpace(versionPrefix.ReplaceAllString(name, ""))
}

func cleanInfos(infos string) string {
	return strings.TrimSpace(worksWith.ReplaceAllString(strings.TrimSpace(infos), ""))
}

func pickDownload(links []string) (string, bool) {
	for _, variant := range downloadVariants {
		for _, link := range links {
			if strings.Contains(link, variant) {
				return link, true
			}
		}
	}
	return "", false
}

func firstWord(s string) string {
	word, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	return word
}
