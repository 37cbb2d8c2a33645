package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/logger"
)

// DeleteWordHandler removes one stored word and its morpheme rows
func DeleteWordHandler(c echo.Context) error {
	type deleteWordResponse struct {
		Message string `json:"message"`
	}

	publicID := c.Param("id")
	if publicID == "" {
		return c.JSON(http.StatusBadRequest, deleteWordResponse{
			Message: "Missing word ID",
		})
	}

	ctx := c.Request().Context()
	q := db.New(c.(*middleware.AppContext).App.DBConn)

	deleted, err := q.DeleteWordByPublicID(ctx, publicID)
	if err != nil {
		logger.Error("Failed to delete word", "public_id", publicID, "err", err)
		return c.JSON(http.StatusInternalServerError, deleteWordResponse{
			Message: "Internal server error",
		})
	}
	if deleted == 0 {
		return c.JSON(http.StatusNotFound, deleteWordResponse{
			Message: "Word not found",
		})
	}

	return c.JSON(http.StatusOK, deleteWordResponse{
		Message: "Word deleted",
	})
}
