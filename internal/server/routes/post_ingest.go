package routes

import (
	"encoding/json"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/queue"
	"github.com/lexicaforge/backend/internal/server/middleware"
	"github.com/lexicaforge/backend/pkg/logger"
)

// CreateIngestJobHandler registers a Wiktionary ingest job and hands it to
// the worker pipeline
func CreateIngestJobHandler(c echo.Context) error {
	type createIngestBody struct {
		Language  string   `json:"language" validate:"required"`
		Headwords []string `json:"headwords" validate:"required,min=1,max=50,dive,required"`
	}

	type createIngestResponse struct {
		Message       string `json:"message"`
		CorrelationID string `json:"correlation_id,omitempty"`
		Status        string `json:"status,omitempty"`
	}

	data := new(createIngestBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createIngestResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createIngestResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := db.New(app.DBConn)

	correlationID := uuid.NewString()
	job, err := q.CreateIngestJob(ctx, db.CreateIngestJobParams{
		CorrelationID: correlationID,
		Language:      data.Language,
		Headwords:     data.Headwords,
	})
	if err != nil {
		logger.Error("Failed to create ingest job", "err", err)
		return c.JSON(http.StatusInternalServerError, createIngestResponse{
			Message: "Internal server error",
		})
	}

	msg, err := json.Marshal(queue.IngestJobMsg{
		Message:       "ingest",
		CorrelationID: job.CorrelationID,
		Language:      job.Language,
		Headwords:     job.Headwords,
	})
	if err != nil {
		logger.Error("Failed to marshal ingest message", "correlation_id", job.CorrelationID, "err", err)
		return c.JSON(http.StatusInternalServerError, createIngestResponse{
			Message: "Internal server error",
		})
	}
	if err := queue.PublishFIFO(app.Queue, queue.IngestQueue, msg); err != nil {
		logger.Error("Failed to publish ingest job", "correlation_id", job.CorrelationID, "err", err)
		return c.JSON(http.StatusInternalServerError, createIngestResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusAccepted, createIngestResponse{
		Message:       "Ingest job queued",
		CorrelationID: job.CorrelationID,
		Status:        job.Status,
	})
}
