package recommender

import "errors"

// Failure kinds surfaced by Recommend. Transport failures from the
// catalog client are propagated as-is and are distinguishable with
// errors.As; everything else unclassified is an unexpected failure.
var (
	// ErrInvalidMood: the mood is not in the mood table. Caller-correctable.
	ErrInvalidMood = errors.New("unknown mood")

	// ErrNoCatalogResults: the genre search returned nothing at all.
	ErrNoCatalogResults = errors.New("no movies found for this mood/genre")

	// ErrNoMatch: the search had results but none survived the filters.
	ErrNoMatch = errors.New("no movies matched your filters, try relaxing them a bit")
)
