package models

// Category identifies the risk domain a finding belongs to.
//
// The set is closed by design: category weights in the aggregation engine
// are a total mapping over these values, so adding a category is a
// deliberate, compile-checked change rather than a runtime registration.
type Category string

const (
	CategoryTextAnalysis        Category = "text_analysis"
	CategoryEmailValidation     Category = "email_validation"
	CategoryURLValidation       Category = "url_validation"
	CategoryPlatformCredibility Category = "platform_credibility"
	CategoryGeneral             Category = "general"
)

// Categories lists every category in aggregation order.
var Categories = []Category{
	CategoryTextAnalysis,
	CategoryEmailValidation,
	CategoryURLValidation,
	CategoryPlatformCredibility,
	CategoryGeneral,
}

// Finding is one detected risk indicator.
//
// Severity and confidence are independent axes: severity says how bad the
// indicator is in isolation (0-100), confidence says how sure the analyzer
// is that the indicator truly applies (0.0-1.0). A finding is immutable
// once created; the engine only reads findings, it never rewrites them.
//
// Two findings are considered the same for deduplication purposes iff
// their Description strings are equal.
type Finding struct {
	// Category matches the category of the analyzer that produced it.
	Category Category

	// Severity is the 0-100 badness of this indicator on its own.
	Severity int

	// Description is a human-readable, non-empty summary (max 500 chars).
	// It doubles as the flag text shown to callers.
	Description string

	// Confidence is the analyzer's certainty in this specific finding.
	Confidence float64
}

// Weight is the sort key used to rank findings: severity scaled by how
// certain the analyzer is that the finding applies.
func (f Finding) Weight() float64 {
	return float64(f.Severity) * f.Confidence
}

// CategoryResult is the output of a single analyzer for one request.
//
// Findings keep detection order, not significance order. Confidence is the
// analyzer's own estimate of how thorough its analysis was, which is
// distinct from the per-finding confidences. Results are created fresh per
// request and never mutated after construction.
type CategoryResult struct {
	Findings     []Finding
	Confidence   float64
	AnalyzerName string
}
