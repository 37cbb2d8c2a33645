package routes

import (
	"errors"
	"net/http"
	"sort"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/cognates"
	"github.com/lexicaforge/backend/pkg/logger"
)

// candidatePrefilter is how many nearest signature vectors are pulled from
// the database before exact rescoring.
const candidatePrefilter = 64

// GetWordCognatesHandler finds likely cognates of a stored word. Candidates
// come from a signature-vector nearest-neighbour query, the exact combined
// score is then computed per pair.
func GetWordCognatesHandler(c echo.Context) error {
	type getCognatesQuery struct {
		Language string `query:"language"`
		Limit    int32  `query:"limit" validate:"omitempty,min=1,max=64"`
	}

	type cognateCandidate struct {
		Word  wordView       `json:"word"`
		Score cognates.Score `json:"score"`
	}

	type getCognatesResponse struct {
		Message    string             `json:"message"`
		Candidates []cognateCandidate `json:"candidates"`
	}

	publicID := c.Param("id")
	if publicID == "" {
		return c.JSON(http.StatusBadRequest, getCognatesResponse{
			Message: "Missing word ID",
		})
	}

	data := new(getCognatesQuery)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getCognatesResponse{
			Message: "Invalid query parameters",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getCognatesResponse{
			Message: "Invalid query parameters",
		})
	}
	if data.Limit == 0 {
		data.Limit = 10
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	word, err := q.GetWordByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, getCognatesResponse{
				Message: "Word not found",
			})
		}
		logger.Error("Failed to get word", "public_id", publicID, "err", err)
		return c.JSON(http.StatusInternalServerError, getCognatesResponse{
			Message: "Internal server error",
		})
	}

	similar, err := q.FindSimilarWords(ctx, db.FindSimilarWordsParams{
		WordID:    word.ID,
		Language:  data.Language,
		Signature: word.Signature,
		Limit:     candidatePrefilter,
	})
	if err != nil {
		logger.Error("Failed to query similar words", "public_id", publicID, "err", err)
		return c.JSON(http.StatusInternalServerError, getCognatesResponse{
			Message: "Internal server error",
		})
	}

	candidates := make([]cognateCandidate, 0, len(similar))
	for _, cand := range similar {
		score := app.Detector.Score(word.Normalized, cand.Normalized)
		if !score.IsCognate {
			continue
		}
		candidates = append(candidates, cognateCandidate{
			Word:  toWordView(cand, nil),
			Score: score,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score.CombinedScore > candidates[j].Score.CombinedScore
	})
	if int32(len(candidates)) > data.Limit {
		candidates = candidates[:data.Limit]
	}

	return c.JSON(http.StatusOK, getCognatesResponse{
		Message:    "Cognate candidates found",
		Candidates: candidates,
	})
}
