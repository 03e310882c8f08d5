package recommender

import (
	"strconv"
	"strings"

	"github.com/juhi0109/movie-recommender/internal/models"
)

// Normalize derives the parsed filter/sort fields from a raw catalog
// record. It never fails: malformed values just leave the parsed field
// absent, which makes the candidate unusable for the corresponding
// filter or sort key but keeps it in the pool.
func Normalize(raw models.RawDetail) models.Candidate {
	c := models.Candidate{
		Detail:     raw,
		TitleLower: strings.ToLower(raw.Title),
	}

	// The catalog encodes series spans like "2008-2013"; only the
	// leading four digits count, and only when all four are digits.
	if len(raw.Year) >= 4 && isDigits(raw.Year[:4]) {
		c.Year, _ = strconv.Atoi(raw.Year[:4])
		c.HasYear = true
	}

	if raw.Rating != "" && raw.Rating != "N/A" {
		if r, err := strconv.ParseFloat(raw.Rating, 64); err == nil {
			c.Rating = r
			c.HasRating = true
		}
	}

	return c
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
