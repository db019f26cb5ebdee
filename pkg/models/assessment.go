package models

// Verdict is the categorical risk label derived from the final score.
type Verdict string

const (
	VerdictSafe     Verdict = "Safe"
	VerdictCaution  Verdict = "Caution"
	VerdictHighRisk Verdict = "High Risk"
)

// ConfidenceLevel expresses how much the engine trusts its own conclusion,
// based on input completeness and signal consistency. It is computed
// independently of the numeric score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// Assessment is the complete output of one job posting analysis.
//
// The five fields are the entire contract surfaced to callers. An
// Assessment is constructed once per request and never modified; two
// identical requests produce identical assessments (no hidden state or
// randomness anywhere in the pipeline).
type Assessment struct {
	// RiskScore is the aggregated 0-100 fraud likelihood.
	RiskScore int `json:"risk_score"`

	// Flags lists the most significant finding descriptions, ranked by
	// severity weighted by confidence, deduplicated, capped at 8.
	Flags []string `json:"flags"`

	// Explanation is human-readable prose covering the verdict, the top
	// concerns, per-category insights, and a recommendation.
	Explanation string `json:"explanation"`

	Verdict    Verdict         `json:"verdict"`
	Confidence ConfidenceLevel `json:"confidence"`
}
