package models

// RecommendParams holds the raw query parameters of a recommendation
// request. Validation tags cover per-field bounds (years 1960-2025,
// ratings 0-9.9, the limits the recommendation form offers);
// cross-field checks (min <= max) happen in Config.
type RecommendParams struct {
	Mood       string  `query:"mood" validate:"required"`
	Region     string  `query:"region" validate:"omitempty,oneof=any hollywood bollywood"`
	YearMode   string  `query:"year_mode" validate:"omitempty,oneof=any exact range"`
	Year       int     `query:"year" validate:"omitempty,min=1960,max=2025"`
	YearMin    int     `query:"year_min" validate:"omitempty,min=1960,max=2025"`
	YearMax    int     `query:"year_max" validate:"omitempty,min=1960,max=2025"`
	RatingMode string  `query:"rating_mode" validate:"omitempty,oneof=any minimum range"`
	RatingMin  float64 `query:"rating_min" validate:"omitempty,min=0,max=9.9"`
	RatingMax  float64 `query:"rating_max" validate:"omitempty,min=0,max=9.9"`
	Sort       string  `query:"sort" validate:"omitempty,oneof=random newest_first oldest_first highest_rating alphabetical"`
}

// Config converts the raw parameters into a FilterConfig, applying
// defaults for omitted dimensions.
func (p RecommendParams) Config() (FilterConfig, error) {
	cfg := FilterConfig{
		Region: RegionAny,
		Year:   AnyYear(),
		Rating: AnyRating(),
		Sort:   SortRandom,
	}

	if p.Region != "" {
		cfg.Region = Region(p.Region)
	}

	switch YearMode(p.YearMode) {
	case YearExact:
		cfg.Year = ExactYear(p.Year)
	case YearRange:
		cfg.Year = YearBetween(p.YearMin, p.YearMax)
	}

	switch RatingMode(p.RatingMode) {
	case RatingMinimum:
		cfg.Rating = MinRating(p.RatingMin)
	case RatingRange:
		cfg.Rating = RatingBetween(p.RatingMin, p.RatingMax)
	}

	if p.Sort != "" {
		cfg.Sort = SortMode(p.Sort)
	}

	if err := cfg.Validate(); err != nil {
		return FilterConfig{}, err
	}
	return cfg, nil
}
