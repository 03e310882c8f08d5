package models

import "fmt"

// Region is a coarse geographic filter on a movie's country of origin.
type Region string

const (
	RegionAny       Region = "any"
	RegionHollywood Region = "hollywood" // USA / UK
	RegionBollywood Region = "bollywood" // India
)

// YearMode selects how the release-year filter is applied.
type YearMode string

const (
	YearAny   YearMode = "any"
	YearExact YearMode = "exact"
	YearRange YearMode = "range"
)

// YearFilter constrains the release year. Exactly one mode is active;
// Exact is read only in YearExact mode, Min/Max only in YearRange mode.
type YearFilter struct {
	Mode  YearMode
	Exact int
	Min   int
	Max   int
}

// AnyYear returns a year filter that passes everything.
func AnyYear() YearFilter { return YearFilter{Mode: YearAny} }

// ExactYear returns a year filter matching a single release year.
func ExactYear(year int) YearFilter { return YearFilter{Mode: YearExact, Exact: year} }

// YearBetween returns an inclusive release-year range filter.
func YearBetween(min, max int) YearFilter { return YearFilter{Mode: YearRange, Min: min, Max: max} }

// RatingMode selects how the rating filter is applied.
type RatingMode string

const (
	RatingAny     RatingMode = "any"
	RatingMinimum RatingMode = "minimum"
	RatingRange   RatingMode = "range"
)

// RatingFilter constrains the catalog rating. Min is read in both
// RatingMinimum and RatingRange modes, Max only in RatingRange mode.
type RatingFilter struct {
	Mode RatingMode
	Min  float64
	Max  float64
}

// AnyRating returns a rating filter that passes everything.
func AnyRating() RatingFilter { return RatingFilter{Mode: RatingAny} }

// MinRating returns a rating filter with an inclusive lower bound.
func MinRating(min float64) RatingFilter { return RatingFilter{Mode: RatingMinimum, Min: min} }

// RatingBetween returns an inclusive rating range filter.
func RatingBetween(min, max float64) RatingFilter {
	return RatingFilter{Mode: RatingRange, Min: min, Max: max}
}

// SortMode is the ordering strategy applied to surviving candidates
// before the first one is picked.
type SortMode string

const (
	SortRandom        SortMode = "random"
	SortNewestFirst   SortMode = "newest_first"
	SortOldestFirst   SortMode = "oldest_first"
	SortHighestRating SortMode = "highest_rating"
	SortAlphabetical  SortMode = "alphabetical"
)

// FilterConfig groups all filter dimensions for one recommendation
// request. It is treated as immutable once built.
type FilterConfig struct {
	Region Region
	Year   YearFilter
	Rating RatingFilter
	Sort   SortMode
}

// Validate checks range bounds. Range filters must reach the engine
// with min <= max already guaranteed.
func (f FilterConfig) Validate() error {
	if f.Year.Mode == YearRange && f.Year.Min > f.Year.Max {
		return fmt.Errorf("year range: min %d greater than max %d", f.Year.Min, f.Year.Max)
	}
	if f.Rating.Mode == RatingRange && f.Rating.Min > f.Rating.Max {
		return fmt.Errorf("rating range: min %.1f greater than max %.1f", f.Rating.Min, f.Rating.Max)
	}
	return nil
}
