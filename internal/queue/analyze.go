package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/lexicon"
	"github.com/lexicaforge/backend/pkg/logger"
	"github.com/lexicaforge/backend/pkg/morphemes"
)

// ProcessAnalyze handles one analyze_queue message: derive the comparison
// forms and morpheme analysis of each fetched headword and persist them.
func ProcessAnalyze(
	ctx context.Context,
	analyzer *morphemes.Analyzer,
	conn *pgxpool.Pool,
	msg string,
) (err error) {
	var data AnalyzeMsg
	if err = json.Unmarshal([]byte(msg), &data); err != nil {
		return err
	}

	q := db.New(conn)
	defer func() {
		if err == nil || data.CorrelationID == "" {
			return
		}
		updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if updateErr := q.UpdateIngestJobStatus(updateCtx, db.UpdateIngestJobStatusParams{
			CorrelationID: data.CorrelationID,
			Status:        db.JobStatusFailed,
			ErrorMessage:  pgtype.Text{String: err.Error(), Valid: true},
		}); updateErr != nil {
			logger.Warn("[Queue] Failed to mark analyze job as failed", "correlation_id", data.CorrelationID, "err", updateErr)
		}
	}()

	var processed, failed int32
	for _, word := range data.Words {
		if word.Headword == "" {
			continue
		}
		if _, storeErr := lexicon.StoreWord(ctx, conn, analyzer, data.Language, word.Headword, word.Etymology); storeErr != nil {
			logger.Warn("[Queue] Failed to store word", "correlation_id", data.CorrelationID, "headword", word.Headword, "err", storeErr)
			failed++
			continue
		}
		processed++
	}

	if err = q.AddIngestJobProgress(ctx, data.CorrelationID, processed, failed); err != nil {
		return fmt.Errorf("failed to record analyze progress: %w", err)
	}

	if processed == 0 {
		err = fmt.Errorf("no words could be analyzed for job %s", data.CorrelationID)
		return err
	}

	if err = q.UpdateIngestJobStatus(ctx, db.UpdateIngestJobStatusParams{
		CorrelationID: data.CorrelationID,
		Status:        db.JobStatusDone,
	}); err != nil {
		return fmt.Errorf("failed to move job to done: %w", err)
	}

	logger.Info("[Queue] Analyze stage completed", "correlation_id", data.CorrelationID, "processed", processed, "failed", failed)
	return nil
}
