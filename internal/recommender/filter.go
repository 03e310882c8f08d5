package recommender

import (
	"strings"

	"github.com/juhi0109/movie-recommender/internal/models"
)

// Country substrings per region. Matching is substring-based on the
// lowercased country field, which may list several countries.
var (
	hollywoodMarkers = []string{"usa", "united states", "uk", "united kingdom"}
	bollywoodMarkers = []string{"india"}
)

// Filter keeps the candidates that pass every active predicate,
// preserving their relative order. An empty result is a valid outcome
// for the caller to classify, not an error here.
func Filter(candidates []models.Candidate, cfg models.FilterConfig) []models.Candidate {
	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if matchesRegion(c, cfg.Region) && matchesYear(c, cfg.Year) && matchesRating(c, cfg.Rating) {
			out = append(out, c)
		}
	}
	return out
}

func matchesRegion(c models.Candidate, region models.Region) bool {
	switch region {
	case models.RegionHollywood:
		return containsAny(strings.ToLower(c.Detail.Country), hollywoodMarkers)
	case models.RegionBollywood:
		return containsAny(strings.ToLower(c.Detail.Country), bollywoodMarkers)
	default:
		return true
	}
}

func matchesYear(c models.Candidate, f models.YearFilter) bool {
	switch f.Mode {
	case models.YearExact:
		return c.HasYear && c.Year == f.Exact
	case models.YearRange:
		return c.HasYear && f.Min <= c.Year && c.Year <= f.Max
	default:
		return true
	}
}

func matchesRating(c models.Candidate, f models.RatingFilter) bool {
	switch f.Mode {
	case models.RatingMinimum:
		return c.HasRating && c.Rating >= f.Min
	case models.RatingRange:
		return c.HasRating && f.Min <= c.Rating && c.Rating <= f.Max
	default:
		return true
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
