// Package subtitle models episodes and their subtitle versions, and ranks
// versions against the user's language and release preferences
package subtitle

import (
	"fmt"

	"addic7ed-downloader/pkg/release"
)

// Version is one subtitle release candidate scraped from an episode page
type Version struct {
	URL          string
	Language     string
	Release      string
	Infos        string
	Completeness string

	releaseHash release.TokenSet
}

// NewVersion builds a version and derives its release hash from the
// release label and the compatibility infos
func NewVersion(url, language, releaseName, infos, completeness string) *Version {
	return &Version{
		URL:          url,
		Language:     language,
		Release:      releaseName,
		Infos:        infos,
		Completeness: completeness,
		releaseHash:  release.StringSet(infos).Union(release.StringSet(releaseName)),
	}
}

// ReleaseHash returns the words describing the releases this version fits.
// The returned set must not be modified.
func (v *Version) ReleaseHash() release.TokenSet {
	return v.releaseHash
}

// Equal reports whether both versions point at the same download in the
// same language
func (v *Version) Equal(other *Version) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.URL == other.URL && v.Language == other.Language
}

func (v *Version) String() string {
	return fmt.Sprintf("%s - %s %s %s", v.Language, v.Release, v.Infos, v.Completeness)
}
