package subtitle

import (
	"regexp"
	"strconv"
	"strings"

	"addic7ed-downloader/pkg/release"
)

var leadingNumber = regexp.MustCompile(`^\d+(?:\.\d+)?`)

// Preferences describe what the user wants from a subtitle
type Preferences struct {
	// Languages are matched as case-insensitive substrings of the version
	// language, most wanted first
	Languages []string
	Release   release.TokenSet
	// Completed asks for finished subtitles. Completeness currently weighs
	// in whatever its value.
	Completed bool
}

// Score is the weight of v under prefs: the sum of the language, release
// and completeness contributions
func Score(v *Version, prefs Preferences) float64 {
	return LanguageScore(v.Language, prefs.Languages) +
		ReleaseScore(v.ReleaseHash(), prefs.Release) +
		CompletenessScore(v.Completeness)
}

// LanguageScore adds (n-i)/n for every preference i found in label, where
// n is the number of preferences
func LanguageScore(label string, languages []string) float64 {
	if len(languages) == 0 {
		return 0
	}

	n := float64(len(languages))
	label = strings.ToLower(label)

	var weight float64
	for i, language := range languages {
		if strings.Contains(label, strings.ToLower(language)) {
			weight += (n - float64(i)) / n
		}
	}
	return weight
}

// ReleaseScore is half the number of release words both sets share
func ReleaseScore(hash, wanted release.TokenSet) float64 {
	return float64(hash.IntersectionSize(wanted)) / 2
}

// CompletenessScore reads the leading percentage of label as a fraction.
// Labels without one ("Completed") count as complete.
func CompletenessScore(label string) float64 {
	match := leadingNumber.FindString(label)
	if match == "" {
		return 1
	}

	percent, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 1
	}
	return percent / 100
}
