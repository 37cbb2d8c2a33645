package queue

// IngestJobMsg asks a worker to fetch the pages of one ingest job.
type IngestJobMsg struct {
	Message       string   `json:"message"`
	CorrelationID string   `json:"correlation_id"`
	Language      string   `json:"language"`
	Headwords     []string `json:"headwords"`
}

// AnalyzeWord is one fetched headword with the etymology text found for it.
type AnalyzeWord struct {
	Headword  string `json:"headword"`
	Etymology string `json:"etymology,omitempty"`
}

// AnalyzeMsg asks a worker to analyze and persist fetched headwords.
type AnalyzeMsg struct {
	Message       string        `json:"message"`
	CorrelationID string        `json:"correlation_id"`
	Language      string        `json:"language"`
	Words         []AnalyzeWord `json:"words"`
}
