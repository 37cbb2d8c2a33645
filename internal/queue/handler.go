package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/pkg/logger"
)

// staleAfterMinutes is how long a job may sit in a running state before a
// restarting worker assumes its processor died.
const staleAfterMinutes = 30

// RecoverStaleJobs resets ingest jobs stuck in a running state and republishes
// them from the fetch stage. Called once on worker start.
func RecoverStaleJobs(
	ctx context.Context,
	ch *amqp091.Channel,
	conn *pgxpool.Pool,
) error {
	q := db.New(conn)

	staleJobs, err := q.GetStaleIngestJobs(ctx, staleAfterMinutes)
	if err != nil {
		return fmt.Errorf("failed to get stale ingest jobs: %w", err)
	}

	if len(staleJobs) == 0 {
		logger.Debug("[Queue] No stale ingest jobs found")
		return nil
	}

	logger.Info("[Queue] Found stale ingest jobs", "count", len(staleJobs))

	for _, job := range staleJobs {
		if len(job.Headwords) == 0 {
			logger.Warn("[Queue] Stale job has no headwords, skipping", "correlation_id", job.CorrelationID)
			continue
		}

		if err := q.ResetIngestJob(ctx, job.CorrelationID); err != nil {
			logger.Error("[Queue] Failed to reset stale job", "correlation_id", job.CorrelationID, "err", err)
			continue
		}

		queueData := IngestJobMsg{
			Message:       "Recovered stale ingest job",
			CorrelationID: job.CorrelationID,
			Language:      job.Language,
			Headwords:     job.Headwords,
		}
		msgBytes, err := json.Marshal(queueData)
		if err != nil {
			logger.Error("[Queue] Failed to marshal recovery message", "correlation_id", job.CorrelationID, "err", err)
			continue
		}

		if err := PublishFIFO(ch, IngestQueue, msgBytes); err != nil {
			logger.Error("[Queue] Failed to republish stale job", "correlation_id", job.CorrelationID, "err", err)
			continue
		}

		logger.Info("[Queue] Recovered stale ingest job", "correlation_id", job.CorrelationID, "previous_status", job.Status)
	}

	return nil
}
