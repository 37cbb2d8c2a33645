package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/morphemes"
)

// AnalyzeMorphemesHandler decomposes a single word into prefix, root and
// suffix morphemes
func AnalyzeMorphemesHandler(c echo.Context) error {
	type morphemesBody struct {
		Word string `json:"word" validate:"required"`
	}

	type morphemesResponse struct {
		Message  string              `json:"message"`
		Analysis *morphemes.Analysis `json:"analysis,omitempty"`
	}

	data := new(morphemesBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, morphemesResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, morphemesResponse{
			Message: "Invalid request body",
		})
	}

	analyzer := c.(*middleware.AppContext).App.Analyzer
	analysis := analyzer.Analyze(data.Word)
	return c.JSON(http.StatusOK, morphemesResponse{
		Message:  "Word analyzed",
		Analysis: &analysis,
	})
}
