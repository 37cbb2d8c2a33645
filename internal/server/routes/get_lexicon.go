package routes

import (
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/logger"
)

const defaultPageSize = 50

// GetWordsHandler lists stored words, paged and optionally per language
func GetWordsHandler(c echo.Context) error {
	type getWordsQuery struct {
		Language string `query:"language"`
		Limit    int32  `query:"limit" validate:"omitempty,min=1,max=200"`
		Offset   int32  `query:"offset" validate:"omitempty,min=0"`
	}

	type getWordsResponse struct {
		Message string     `json:"message"`
		Words   []wordView `json:"words"`
		Total   int64      `json:"total"`
	}

	data := new(getWordsQuery)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getWordsResponse{
			Message: "Invalid query parameters",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getWordsResponse{
			Message: "Invalid query parameters",
		})
	}
	if data.Limit == 0 {
		data.Limit = defaultPageSize
	}

	ctx := c.Request().Context()
	q := db.New(c.(*middleware.AppContext).App.DBConn)

	words, err := q.ListWords(ctx, db.ListWordsParams{
		Language: data.Language,
		Limit:    data.Limit,
		Offset:   data.Offset,
	})
	if err != nil {
		logger.Error("Failed to list words", "err", err)
		return c.JSON(http.StatusInternalServerError, getWordsResponse{
			Message: "Internal server error",
		})
	}
	total, err := q.CountWords(ctx, data.Language)
	if err != nil {
		logger.Error("Failed to count words", "err", err)
		return c.JSON(http.StatusInternalServerError, getWordsResponse{
			Message: "Internal server error",
		})
	}

	views := make([]wordView, 0, len(words))
	for _, w := range words {
		views = append(views, toWordView(w, nil))
	}
	return c.JSON(http.StatusOK, getWordsResponse{
		Message: "Words listed",
		Words:   views,
		Total:   total,
	})
}

// GetWordHandler returns one stored word together with its morpheme analysis
func GetWordHandler(c echo.Context) error {
	type getWordResponse struct {
		Message string    `json:"message"`
		Word    *wordView `json:"word,omitempty"`
	}

	publicID := c.Param("id")
	if publicID == "" {
		return c.JSON(http.StatusBadRequest, getWordResponse{
			Message: "Missing word ID",
		})
	}

	ctx := c.Request().Context()
	q := db.New(c.(*middleware.AppContext).App.DBConn)

	word, err := q.GetWordByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, getWordResponse{
				Message: "Word not found",
			})
		}
		logger.Error("Failed to get word", "public_id", publicID, "err", err)
		return c.JSON(http.StatusInternalServerError, getWordResponse{
			Message: "Internal server error",
		})
	}

	rows, err := q.GetWordMorphemes(ctx, word.ID)
	if err != nil {
		logger.Error("Failed to get word morphemes", "public_id", publicID, "err", err)
		return c.JSON(http.StatusInternalServerError, getWordResponse{
			Message: "Internal server error",
		})
	}

	view := toWordView(word, rows)
	return c.JSON(http.StatusOK, getWordResponse{
		Message: "Word found",
		Word:    &view,
	})
}
