package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/lexicon"
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/logger"
)

// CreateWordsHandler analyzes and stores a batch of headwords synchronously.
// Headwords that normalize to nothing are reported back as failed, they do
// not abort the batch.
func CreateWordsHandler(c echo.Context) error {
	type createWordsBody struct {
		Language  string   `json:"language" validate:"required"`
		Headwords []string `json:"headwords" validate:"required,min=1,max=100,dive,required"`
		Etymology string   `json:"etymology"`
	}

	type createWordsResponse struct {
		Message string     `json:"message"`
		Words   []wordView `json:"words,omitempty"`
		Failed  []string   `json:"failed,omitempty"`
	}

	data := new(createWordsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createWordsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createWordsResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	var views []wordView
	var failed []string
	for _, headword := range data.Headwords {
		word, err := lexicon.StoreWord(ctx, app.DBConn, app.Analyzer, data.Language, headword, data.Etymology)
		if err != nil {
			logger.Warn("Failed to store word", "headword", headword, "err", err)
			failed = append(failed, headword)
			continue
		}
		views = append(views, toWordView(word, nil))
	}

	if len(views) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, createWordsResponse{
			Message: "No headword could be stored",
			Failed:  failed,
		})
	}
	return c.JSON(http.StatusCreated, createWordsResponse{
		Message: "Words stored",
		Words:   views,
		Failed:  failed,
	})
}
