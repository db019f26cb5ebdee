package storage

import (
	"time"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// Record is one completed assessment as persisted. It carries only the
// outcome and coarse input metadata: job text, emails and URLs are never
// stored, so a compromised store leaks no posting content.
type Record struct {
	ID         string                 `json:"id"`
	Timestamp  time.Time              `json:"timestamp"`
	RiskScore  int                    `json:"risk_score"`
	Verdict    models.Verdict         `json:"verdict"`
	Confidence models.ConfidenceLevel `json:"confidence"`
	Platform   string                 `json:"platform,omitempty"`
	FlagCount  int                    `json:"flag_count"`
	DurationMS int64                  `json:"duration_ms"`
}

// Stats aggregates the stored records for reporting endpoints.
type Stats struct {
	TotalAssessments int                    `json:"total_assessments"`
	AverageRiskScore float64                `json:"average_risk_score"`
	VerdictCounts    map[models.Verdict]int `json:"verdict_counts"`
	OldestRecord     *time.Time             `json:"oldest_record,omitempty"`
	NewestRecord     *time.Time             `json:"newest_record,omitempty"`
}

// AssessmentStore defines the interface for persisting assessment
// outcomes. Implementations can use any backend: in-memory, Redis,
// PostgreSQL, etc.
type AssessmentStore interface {
	// Save persists one assessment record.
	Save(record *Record) error

	// Recent returns up to limit records, newest first.
	Recent(limit int) ([]*Record, error)

	// Stats aggregates everything currently stored.
	Stats() (*Stats, error)
}
