package models

// SearchResult is one entry from the catalog keyword search.
type SearchResult struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// RawDetail is the full per-movie record from the catalog, as returned
// by the OMDb "by ID" lookup. Every field is string-typed; the catalog
// uses "N/A" or an empty string for missing values.
type RawDetail struct {
	ImdbID  string `json:"imdbID"`
	Title   string `json:"Title"`
	Year    string `json:"Year"`
	Genre   string `json:"Genre"`
	Rating  string `json:"imdbRating"`
	Country string `json:"Country"`
	Plot    string `json:"Plot"`
	Poster  string `json:"Poster"`
}

// Candidate is a RawDetail plus the parsed fields the filter and sort
// stages work on. HasYear/HasRating are false when the raw value was
// missing or unparseable.
type Candidate struct {
	Detail     RawDetail
	Year       int
	HasYear    bool
	Rating     float64
	HasRating  bool
	TitleLower string
}

// Recommendation is the response shape for a recommended movie.
type Recommendation struct {
	Mood      string `json:"mood"`
	Genre     string `json:"genre"`
	ImdbID    string `json:"imdb_id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Rating    string `json:"imdb_rating"`
	Country   string `json:"country"`
	Plot      string `json:"plot"`
	Poster    string `json:"poster,omitempty"`
	SessionID string `json:"session_id"`
}

// NewRecommendation builds the response payload for a chosen candidate.
// An "N/A" poster is blanked so clients can skip rendering it.
func NewRecommendation(mood, sessionID string, c Candidate) Recommendation {
	poster := c.Detail.Poster
	if poster == "N/A" {
		poster = ""
	}
	return Recommendation{
		Mood:      mood,
		Genre:     c.Detail.Genre,
		ImdbID:    c.Detail.ImdbID,
		Title:     c.Detail.Title,
		Year:      c.Detail.Year,
		Rating:    c.Detail.Rating,
		Country:   c.Detail.Country,
		Plot:      c.Detail.Plot,
		Poster:    poster,
		SessionID: sessionID,
	}
}
