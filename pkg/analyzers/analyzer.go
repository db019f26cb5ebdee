package analyzers

import "github.com/jobguard/go-jobguard/pkg/models"

// Analyzer is the contract every category analyzer satisfies.
//
// Contract relied on by the engine:
//   - Empty optional inputs (email, url) yield zero findings with
//     confidence 1.0: absence of evidence must not manufacture risk.
//   - Empty required inputs (text, platform) yield a single finding with
//     severity 100 and confidence 1.0.
//   - Every finding carries the analyzer's own category.
//   - Analyze never fails: internal anomalies (unparseable URL, malformed
//     email) become low-confidence findings, not errors.
//
// Analyzers hold only read-only rule tables built at construction time,
// so a single instance is safe for concurrent use across requests.
type Analyzer interface {
	// Name identifies the analyzer for diagnostics.
	Name() string

	// Category is the risk domain all of this analyzer's findings carry.
	Category() models.Category

	// Analyze maps one raw input to findings plus a self-reported
	// confidence in how thorough the analysis was.
	Analyze(input string) models.CategoryResult
}
