package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/logger"
)

// GetIngestJobHandler reports the status and progress of one ingest job
func GetIngestJobHandler(c echo.Context) error {
	type ingestJobView struct {
		CorrelationID  string    `json:"correlation_id"`
		Language       string    `json:"language"`
		Headwords      []string  `json:"headwords"`
		Status         string    `json:"status"`
		ProcessedWords int32     `json:"processed_words"`
		FailedWords    int32     `json:"failed_words"`
		Error          string    `json:"error,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}

	type getIngestResponse struct {
		Message string         `json:"message"`
		Job     *ingestJobView `json:"job,omitempty"`
	}

	correlationID := c.Param("id")
	if correlationID == "" {
		return c.JSON(http.StatusBadRequest, getIngestResponse{
			Message: "Missing job ID",
		})
	}

	ctx := c.Request().Context()
	q := db.New(c.(*middleware.AppContext).App.DBConn)

	job, err := q.GetIngestJob(ctx, correlationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, getIngestResponse{
				Message: "Job not found",
			})
		}
		logger.Error("Failed to get ingest job", "correlation_id", correlationID, "err", err)
		return c.JSON(http.StatusInternalServerError, getIngestResponse{
			Message: "Internal server error",
		})
	}

	view := ingestJobView{
		CorrelationID:  job.CorrelationID,
		Language:       job.Language,
		Headwords:      job.Headwords,
		Status:         job.Status,
		ProcessedWords: job.ProcessedWords,
		FailedWords:    job.FailedWords,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
	if job.ErrorMessage.Valid {
		view.Error = job.ErrorMessage.String
	}

	return c.JSON(http.StatusOK, getIngestResponse{
		Message: "Job found",
		Job:     &view,
	})
}
