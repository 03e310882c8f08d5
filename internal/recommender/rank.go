package recommender

import (
	"sort"

	"github.com/juhi0109/movie-recommender/internal/models"
)

// Sort keys for candidates with an absent year or rating; both push the
// candidate to the end of its ordering.
const (
	missingYearNewest = 0
	missingYearOldest = 9999
)

// AvoidRepeat drops candidates matching the previously shown ID. If the
// drop would leave nothing, the input is returned unchanged: repeating
// a movie beats recommending none. The input must be non-empty.
func AvoidRepeat(candidates []models.Candidate, lastID string) []models.Candidate {
	if lastID == "" || len(candidates) <= 1 {
		return candidates
	}
	kept := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Detail.ImdbID != lastID {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}

// Rank orders a non-empty candidate set by the given mode and returns
// the first entry. Non-random modes sort stably so that equal keys keep
// their incoming order; shuffle is only consulted for SortRandom.
func Rank(candidates []models.Candidate, mode models.SortMode, shuffle func(n int, swap func(i, j int))) models.Candidate {
	ordered := make([]models.Candidate, len(candidates))
	copy(ordered, candidates)

	switch mode {
	case models.SortNewestFirst:
		sort.SliceStable(ordered, func(i, j int) bool {
			return yearKey(ordered[i], missingYearNewest) > yearKey(ordered[j], missingYearNewest)
		})
	case models.SortOldestFirst:
		sort.SliceStable(ordered, func(i, j int) bool {
			return yearKey(ordered[i], missingYearOldest) < yearKey(ordered[j], missingYearOldest)
		})
	case models.SortHighestRating:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ratingKey(ordered[i]) > ratingKey(ordered[j])
		})
	case models.SortAlphabetical:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].TitleLower < ordered[j].TitleLower
		})
	default: // SortRandom
		shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	return ordered[0]
}

func yearKey(c models.Candidate, missing int) int {
	if !c.HasYear {
		return missing
	}
	return c.Year
}

func ratingKey(c models.Candidate) float64 {
	if !c.HasRating {
		return 0.0
	}
	return c.Rating
}
