package recommender

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/juhi0109/movie-recommender/internal/models"
)

// Catalog is the slice of the movie catalog the engine depends on.
type Catalog interface {
	// Search runs a keyword search; an empty result means the catalog
	// has nothing at all for the keyword.
	Search(ctx context.Context, keyword string) ([]models.SearchResult, error)
	// GetDetail fetches the full record for one search hit.
	GetDetail(ctx context.Context, imdbID string) (*models.RawDetail, error)
}

// Request carries everything one recommendation needs: the mood, the
// filter configuration, and the previously shown movie to avoid.
type Request struct {
	Mood        string
	Filters     models.FilterConfig
	LastShownID string
}

// Engine narrows a mood plus filters down to a single movie.
type Engine struct {
	catalog Catalog
	shuffle func(n int, swap func(i, j int))
}

// NewEngine creates an engine backed by the given catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		shuffle: rand.Shuffle,
	}
}

// Recommend picks one movie for the request, or fails with one of the
// errors in errors.go (or a catalog transport error, passed through
// unmodified). The caller owns updating its last-shown state afterwards.
func (e *Engine) Recommend(ctx context.Context, req Request) (*models.Candidate, error) {
	genre, ok := models.MapMood(req.Mood)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMood, req.Mood)
	}

	results, err := e.catalog.Search(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", genre, err)
	}
	if len(results) == 0 {
		return nil, ErrNoCatalogResults
	}

	// Decorrelate catalog ranking bias before detail fetch; the stable
	// sort in Rank keeps this order for equal keys.
	e.shuffle(len(results), func(i, j int) {
		results[i], results[j] = results[j], results[i]
	})

	candidates := make([]models.Candidate, 0, len(results))
	for _, r := range results {
		detail, err := e.catalog.GetDetail(ctx, r.ImdbID)
		if err != nil {
			// One failed fetch aborts the whole request.
			return nil, fmt.Errorf("fetch detail %s: %w", r.ImdbID, err)
		}
		candidates = append(candidates, Normalize(*detail))
	}

	survivors := Filter(candidates, req.Filters)
	if len(survivors) == 0 {
		return nil, ErrNoMatch
	}

	survivors = AvoidRepeat(survivors, req.LastShownID)
	pick := Rank(survivors, req.Filters.Sort, e.shuffle)

	slog.Debug("recommendation chosen",
		"mood", req.Mood, "genre", genre,
		"searched", len(results), "survivors", len(survivors),
		"imdb_id", pick.Detail.ImdbID,
	)
	return &pick, nil
}
