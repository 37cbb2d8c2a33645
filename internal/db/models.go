package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pgvector/pgvector-go"
)

// Word is one stored headword with its derived comparison forms.
type Word struct {
	ID         int64
	PublicID   string
	Headword   string
	Language   string
	Normalized string
	Skeleton   string
	Signature  pgvector.Vector
	Etymology  pgtype.Text
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WordMorpheme is one morpheme row of a stored word's analysis.
type WordMorpheme struct {
	ID       int64
	WordID   int64
	Text     string
	Type     string
	Meaning  pgtype.Text
	Position int32
	Length   int32
}

// IngestJob tracks one Wiktionary ingestion run through the queue pipeline.
type IngestJob struct {
	ID             int64
	CorrelationID  string
	Language       string
	Headwords      []string
	Status         string
	ProcessedWords int32
	FailedWords    int32
	ErrorMessage   pgtype.Text
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Ingest job states. pending -> fetching -> analyzing -> done, or failed.
const (
	JobStatusPending   = "pending"
	JobStatusFetching  = "fetching"
	JobStatusAnalyzing = "analyzing"
	JobStatusDone      = "done"
	JobStatusFailed    = "failed"
)
