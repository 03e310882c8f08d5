package handler

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/juhi0109/movie-recommender/internal/models"
	"github.com/juhi0109/movie-recommender/internal/omdb"
	"github.com/juhi0109/movie-recommender/internal/recommender"
	"github.com/juhi0109/movie-recommender/internal/session"
)

// SessionHeader carries the client's session ID; the server mints one
// when it is missing and echoes it back on every response.
const SessionHeader = "X-Session-ID"

// RecommendationHandler handles HTTP requests for recommendations.
type RecommendationHandler struct {
	engine   *recommender.Engine
	sessions session.Store
	validate *validator.Validate
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(engine *recommender.Engine, sessions session.Store) *RecommendationHandler {
	return &RecommendationHandler{
		engine:   engine,
		sessions: sessions,
		validate: validator.New(),
	}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health godoc
// GET /health
func (h *RecommendationHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "mood-recommender",
	})
}

// Moods godoc
// GET /api/v1/moods
func (h *RecommendationHandler) Moods(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"moods": models.Moods(),
	})
}

// Recommend godoc
// GET /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	params := models.RecommendParams{
		Mood:       c.Query("mood"),
		Region:     c.Query("region", string(models.RegionAny)),
		YearMode:   c.Query("year_mode", string(models.YearAny)),
		Year:       fiber.Query(c, "year", 0),
		YearMin:    fiber.Query(c, "year_min", 0),
		YearMax:    fiber.Query(c, "year_max", 0),
		RatingMode: c.Query("rating_mode", string(models.RatingAny)),
		RatingMin:  fiber.Query(c, "rating_min", 0.0),
		RatingMax:  fiber.Query(c, "rating_max", 0.0),
		Sort:       c.Query("sort", string(models.SortRandom)),
	}

	if err := h.validate.Struct(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid parameters: " + err.Error(),
		})
	}

	cfg, err := params.Config()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	sessionID := c.Get(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Set(SessionHeader, sessionID)

	lastID, err := h.sessions.LastShown(c.Context(), sessionID)
	if err != nil {
		// State is best-effort: a broken store only costs repeat avoidance.
		slog.Warn("could not read session state", "session_id", sessionID, "error", err)
		lastID = ""
	}

	pick, err := h.engine.Recommend(c.Context(), recommender.Request{
		Mood:        params.Mood,
		Filters:     cfg,
		LastShownID: lastID,
	})
	if err != nil {
		return h.renderError(c, params.Mood, err)
	}

	if err := h.sessions.SetLastShown(c.Context(), sessionID, pick.Detail.ImdbID); err != nil {
		slog.Warn("could not write session state", "session_id", sessionID, "error", err)
	}

	return c.JSON(models.NewRecommendation(params.Mood, sessionID, *pick))
}

// renderError maps engine failures to user-facing responses. This is
// the only place errors turn into messages; the pipeline stages below
// propagate them untouched.
func (h *RecommendationHandler) renderError(c fiber.Ctx, mood string, err error) error {
	var transport *omdb.TransportError

	switch {
	case errors.Is(err, recommender.ErrInvalidMood):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "unknown mood: " + mood,
		})
	case errors.Is(err, recommender.ErrNoCatalogResults):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "No movies found for this mood/genre.",
		})
	case errors.Is(err, recommender.ErrNoMatch):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error: "No movies matched your filters. Try relaxing them a bit.",
		})
	case errors.As(err, &transport):
		slog.Error("catalog request failed", "mood", mood, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Network error while calling the movie API. Please try again.",
		})
	default:
		slog.Error("recommendation failed", "mood", mood, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Something went wrong.",
		})
	}
}
