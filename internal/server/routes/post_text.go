package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/textsim"
)

// TokenizeTextHandler lowercases and whitespace-splits a text
func TokenizeTextHandler(c echo.Context) error {
	type tokenizeBody struct {
		Text string `json:"text"`
	}

	type tokenizeResponse struct {
		Message string   `json:"message"`
		Tokens  []string `json:"tokens"`
	}

	data := new(tokenizeBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, tokenizeResponse{
			Message: "Invalid request body",
		})
	}

	text := c.(*middleware.AppContext).App.Text
	return c.JSON(http.StatusOK, tokenizeResponse{
		Message: "Text tokenized",
		Tokens:  text.Tokenize(data.Text),
	})
}

// ExtractEntitiesHandler returns the capitalized standalone words of a text
func ExtractEntitiesHandler(c echo.Context) error {
	type entitiesBody struct {
		Text string `json:"text"`
	}

	type entitiesResponse struct {
		Message  string   `json:"message"`
		Entities []string `json:"entities"`
	}

	data := new(entitiesBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, entitiesResponse{
			Message: "Invalid request body",
		})
	}

	text := c.(*middleware.AppContext).App.Text
	return c.JSON(http.StatusOK, entitiesResponse{
		Message:  "Entities extracted",
		Entities: text.ExtractEntities(data.Text),
	})
}

// TextSimilarityHandler scores the token overlap of two texts
func TextSimilarityHandler(c echo.Context) error {
	type similarityBody struct {
		Text1 string `json:"text1"`
		Text2 string `json:"text2"`
	}

	type similarityResponse struct {
		Message    string  `json:"message"`
		Similarity float64 `json:"similarity"`
	}

	data := new(similarityBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, similarityResponse{
			Message: "Invalid request body",
		})
	}

	text := c.(*middleware.AppContext).App.Text
	return c.JSON(http.StatusOK, similarityResponse{
		Message:    "Similarity calculated",
		Similarity: text.CalculateSimilarity(data.Text1, data.Text2),
	})
}

// TextStatsHandler computes character and word statistics for a text.
// When delimiters are given the fields split on them is returned as well.
func TextStatsHandler(c echo.Context) error {
	type statsBody struct {
		Text       string `json:"text"`
		Delimiters string `json:"delimiters"`
	}

	type statsResponse struct {
		Message string               `json:"message"`
		Stats   *textsim.StringStats `json:"stats,omitempty"`
		Fields  []string             `json:"fields,omitempty"`
	}

	data := new(statsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, statsResponse{
			Message: "Invalid request body",
		})
	}

	stats := textsim.Stats(data.Text)
	resp := statsResponse{
		Message: "Stats calculated",
		Stats:   &stats,
	}
	if data.Delimiters != "" {
		resp.Fields = textsim.SplitDelims(data.Text, data.Delimiters)
	}
	return c.JSON(http.StatusOK, resp)
}

// FindPatternsHandler locates every occurrence of the given patterns in a text
func FindPatternsHandler(c echo.Context) error {
	type patternsBody struct {
		Text     string   `json:"text"`
		Patterns []string `json:"patterns" validate:"required,min=1"`
	}

	type patternsResponse struct {
		Message string           `json:"message"`
		Matches map[string][]int `json:"matches,omitempty"`
	}

	data := new(patternsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, patternsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, patternsResponse{
			Message: "Invalid request body",
		})
	}

	return c.JSON(http.StatusOK, patternsResponse{
		Message: "Patterns matched",
		Matches: textsim.FindPatterns(data.Text, data.Patterns),
	})
}
