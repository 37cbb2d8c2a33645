package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/internal/storage"
	"github.com/lexicaforge/backend/pkg/logger"
)

// DeleteIngestPageHandler removes one archived page snapshot
func DeleteIngestPageHandler(c echo.Context) error {
	correlationID := c.Param("id")
	headword := c.Param("headword")
	if correlationID == "" || headword == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing job ID or headword"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	key := storage.PageKey(correlationID, headword)
	if err := storage.DeletePage(ctx, app.S3, key); err != nil {
		logger.Error("Failed to delete page snapshot", "key", key, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Snapshot deleted"})
}
