package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/cognates"
)

// ScoreCognatesHandler scores one word pair for likely common ancestry
func ScoreCognatesHandler(c echo.Context) error {
	type cognatesBody struct {
		Word1 string `json:"word1" validate:"required"`
		Word2 string `json:"word2" validate:"required"`
	}

	type cognatesResponse struct {
		Message string          `json:"message"`
		Score   *cognates.Score `json:"score,omitempty"`
	}

	data := new(cognatesBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, cognatesResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, cognatesResponse{
			Message: "Invalid request body",
		})
	}

	detector := c.(*middleware.AppContext).App.Detector
	score := detector.Score(data.Word1, data.Word2)
	return c.JSON(http.StatusOK, cognatesResponse{
		Message: "Pair scored",
		Score:   &score,
	})
}
