package routes

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/internal/storage"
	"github.com/lexicaforge/backend/pkg/logger"
)

// GetIngestPageHandler serves the raw HTML snapshot archived for one fetched
// headword of an ingest job
func GetIngestPageHandler(c echo.Context) error {
	correlationID := c.Param("id")
	headword := c.Param("headword")
	if correlationID == "" || headword == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing job ID or headword"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	if _, err := db.New(app.DBConn).GetIngestJob(ctx, correlationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Job not found"})
		}
		logger.Error("Failed to get ingest job", "correlation_id", correlationID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	page, err := storage.GetPage(ctx, app.S3, storage.PageKey(correlationID, headword))
	if err != nil {
		logger.Warn("Failed to load page snapshot", "correlation_id", correlationID, "headword", headword, "err", err)
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Snapshot not found"})
	}

	return c.Blob(http.StatusOK, "text/html; charset=utf-8", page)
}
