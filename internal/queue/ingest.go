package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"

	"github.com/lexicaforge/backend/internal/db"
	"github.com/lexicaforge/backend/internal/ingest"
	"github.com/lexicaforge/backend/internal/storage"
	"github.com/lexicaforge/backend/internal/util"
	"github.com/lexicaforge/backend/pkg/logger"
)

const (
	fetchRetries   = 3
	archiveRetries = 2
)

// maxCandidateTerms caps how many capitalized terms from an etymology section
// ride along into the analyze stage per page.
const maxCandidateTerms = 10

// ProcessIngest handles one ingest_queue message: fetch the Wiktionary page
// of each headword, archive the raw HTML, pull the etymology section, and
// hand the collected words to the analyze stage.
func ProcessIngest(
	ctx context.Context,
	s3Client *awss3.Client,
	wikiClient *ingest.Client,
	ch *amqp091.Channel,
	conn *pgxpool.Pool,
	msg string,
) (err error) {
	var data IngestJobMsg
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
			logger.Warn("[Queue] Failed to mark ingest job as failed", "correlation_id", data.CorrelationID, "err", updateErr)
		}
	}()

	if err = q.UpdateIngestJobStatus(ctx, db.UpdateIngestJobStatusParams{
		CorrelationID: data.CorrelationID,
		Status:        db.JobStatusFetching,
	}); err != nil {
		return fmt.Errorf("failed to move job to fetching: %w", err)
	}

	words := make([]AnalyzeWord, 0, len(data.Headwords))
	seen := make(map[string]bool, len(data.Headwords))
	var failed int32

	for _, headword := range data.Headwords {
		if headword == "" || seen[headword] {
			continue
		}
		seen[headword] = true

		var pageHTML string
		fetchErr := util.RetryErrWithContext(ctx, fetchRetries, func(ctx context.Context) error {
			var err error
			pageHTML, err = wikiClient.FetchPageHTML(ctx, headword)
			return err
		})
		if fetchErr != nil {
			logger.Warn("[Queue] Failed to fetch page", "correlation_id", data.CorrelationID, "headword", headword, "err", fetchErr)
			failed++
			continue
		}

		if s3Client != nil {
			key := storage.PageKey(data.CorrelationID, headword)
			archiveErr := util.RetryErr(archiveRetries, func() error {
				return storage.ArchivePage(ctx, s3Client, key, pageHTML)
			})
			if archiveErr != nil {
				// The snapshot is an audit artifact; analysis continues without it.
				logger.Warn("[Queue] Failed to archive page", "correlation_id", data.CorrelationID, "key", key, "err", archiveErr)
			}
		}

		etymology, parseErr := ingest.EtymologySection(pageHTML)
		if parseErr != nil {
			logger.Warn("[Queue] Failed to parse page", "correlation_id", data.CorrelationID, "headword", headword, "err", parseErr)
			failed++
			continue
		}

		words = append(words, AnalyzeWord{Headword: headword, Etymology: etymology})

		terms := ingest.CandidateTerms(etymology)
		if len(terms) > maxCandidateTerms {
			terms = terms[:maxCandidateTerms]
		}
		for _, term := range terms {
			if seen[term] {
				continue
			}
			seen[term] = true
			words = append(words, AnalyzeWord{Headword: term})
		}
	}

	if failed > 0 {
		if err = q.AddIngestJobProgress(ctx, data.CorrelationID, 0, failed); err != nil {
			return fmt.Errorf("failed to record fetch failures: %w", err)
		}
	}

	if len(words) == 0 {
		err = fmt.Errorf("no pages could be fetched for job %s", data.CorrelationID)
		return err
	}

	analyzeMsg := AnalyzeMsg{
		Message:       "Fetched pages ready for analysis",
		CorrelationID: data.CorrelationID,
		Language:      data.Language,
		Words:         words,
	}
	msgBytes, err := json.Marshal(analyzeMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal analyze message: %w", err)
	}

	if err = q.UpdateIngestJobStatus(ctx, db.UpdateIngestJobStatusParams{
		CorrelationID: data.CorrelationID,
		Status:        db.JobStatusAnalyzing,
	}); err != nil {
		return fmt.Errorf("failed to move job to analyzing: %w", err)
	}

	if err = PublishFIFO(ch, AnalyzeQueue, msgBytes); err != nil {
		return fmt.Errorf("failed to publish analyze message: %w", err)
	}

	logger.Info("[Queue] Ingest stage completed", "correlation_id", data.CorrelationID, "fetched", len(words), "failed", failed)
	return nil
}
