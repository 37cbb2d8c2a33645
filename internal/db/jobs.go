package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobColumns = `id, correlation_id, language, headwords, status, processed_words, failed_words, error_message, created_at, updated_at`

func scanJob(row pgx.Row) (IngestJob, error) {
	var j IngestJob
	err := row.Scan(
		&j.ID,
		&j.CorrelationID,
		&j.Language,
		&j.Headwords,
		&j.Status,
		&j.ProcessedWords,
		&j.FailedWords,
		&j.ErrorMessage,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	return j, err
}

// CreateIngestJobParams registers a new ingestion run.
type CreateIngestJobParams struct {
	CorrelationID string
	Language      string
	Headwords     []string
}

func (q *Queries) CreateIngestJob(ctx context.Context, arg CreateIngestJobParams) (IngestJob, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO ingest_jobs (correlation_id, language, headwords, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+jobColumns,
		arg.CorrelationID,
		arg.Language,
		arg.Headwords,
		JobStatusPending,
	)
	return scanJob(row)
}

func (q *Queries) GetIngestJob(ctx context.Context, correlationID string) (IngestJob, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+jobColumns+` FROM ingest_jobs WHERE correlation_id = $1`,
		correlationID,
	)
	return scanJob(row)
}

// UpdateIngestJobStatusParams moves a job to a new state, optionally carrying
// an error message.
type UpdateIngestJobStatusParams struct {
	CorrelationID string
	Status        string
	ErrorMessage  pgtype.Text
}

func (q *Queries) UpdateIngestJobStatus(ctx context.Context, arg UpdateIngestJobStatusParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE ingest_jobs
		SET status = $2, error_message = $3, updated_at = now()
		WHERE correlation_id = $1`,
		arg.CorrelationID,
		arg.Status,
		arg.ErrorMessage,
	)
	return err
}

// AddIngestJobProgress bumps the processed/failed counters of a running job.
func (q *Queries) AddIngestJobProgress(ctx context.Context, correlationID string, processed, failed int32) error {
	_, err := q.db.Exec(ctx, `
		UPDATE ingest_jobs
		SET processed_words = processed_words + $2,
			failed_words = failed_words + $3,
			updated_at = now()
		WHERE correlation_id = $1`,
		correlationID,
		processed,
		failed,
	)
	return err
}

// GetStaleIngestJobs returns jobs stuck in a running state for longer than
// the given number of minutes.
func (q *Queries) GetStaleIngestJobs(ctx context.Context, olderThanMinutes int32) ([]IngestJob, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+jobColumns+` FROM ingest_jobs
		WHERE status IN ($1, $2)
		AND updated_at < now() - make_interval(mins => $3)`,
		JobStatusFetching,
		JobStatusAnalyzing,
		olderThanMinutes,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []IngestJob
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// ResetIngestJob puts a stale job back to pending so a worker picks it up
// again from the start.
func (q *Queries) ResetIngestJob(ctx context.Context, correlationID string) error {
	_, err := q.db.Exec(ctx, `
		UPDATE ingest_jobs
		SET status = $2, processed_words = 0, failed_words = 0,
			error_message = NULL, updated_at = now()
		WHERE correlation_id = $1`,
		correlationID,
		JobStatusPending,
	)
	return err
}
