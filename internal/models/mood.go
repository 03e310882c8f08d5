package models

import (
	"sort"
	"strings"
)

// moodGenres maps each supported mood to the genre keyword used for
// catalog searches. The table is fixed; membership is validated before
// any network call.
var moodGenres = map[string]string{
	"happy":     "Comedy",
	"sad":       "Drama",
	"romantic":  "Romance",
	"thriller":  "Thriller",
	"motivated": "Sport",
	"funny":     "Comedy",
	"scared":    "Horror",
}

// MapMood resolves a mood to its search genre. The mood is lowercased
// and trimmed before lookup. ok is false for unknown moods.
func MapMood(mood string) (genre string, ok bool) {
	genre, ok = moodGenres[strings.ToLower(strings.TrimSpace(mood))]
	return genre, ok
}

// Moods returns the supported mood keys in sorted order.
func Moods() []string {
	moods := make([]string, 0, len(moodGenres))
	for m := range moodGenres {
		moods = append(moods, m)
	}
	sort.Strings(moods)
	return moods
}
