package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/jobguard/go-jobguard/pkg/analyzers"
	"github.com/jobguard/go-jobguard/pkg/models"
)

// Input is the raw job posting data supplied by the integrating
// application for analysis.
//
// JobText and PlatformSource are required; CompanyURL and RecruiterEmail
// are optional because many postings simply don't carry them. Shape and
// length validation happens at the boundary (transport layer) before an
// Input reaches the engine.
type Input struct {
	// JobText is the posting's textual content.
	JobText string

	// CompanyURL is the claimed company website (optional).
	CompanyURL string

	// RecruiterEmail is the contact address given by the poster (optional).
	RecruiterEmail string

	// PlatformSource is where the posting was found (e.g. "LinkedIn",
	// "chrome", "telegram").
	PlatformSource string
}

// JobGuard is the job posting fraud assessment engine.
//
// Architecture principles:
//   - The engine is analyzer-agnostic: analyzers are held behind the
//     Analyzer interface and any of the four can be replaced without
//     touching aggregation, provided the CategoryResult contract holds.
//   - Analyzers are independent: each reads only its own input and its own
//     static rule tables, so the engine fans them out in parallel and
//     joins on all four before aggregating.
//   - Stateless per request: every assessment is a pure function of the
//     input. Identical inputs yield identical assessments.
//   - Explainable: the same finding set that drives the score drives the
//     flags and the prose explanation.
type JobGuard struct {
	text     analyzers.Analyzer
	email    analyzers.Analyzer
	url      analyzers.Analyzer
	platform analyzers.Analyzer
}

// New creates an engine wired with the default rule-table analyzers.
func New() *JobGuard {
	return NewWithAnalyzers(
		analyzers.NewTextAnalyzer(),
		analyzers.NewEmailAnalyzer(),
		analyzers.NewURLAnalyzer(),
		analyzers.NewPlatformAnalyzer(),
	)
}

// NewWithAnalyzers creates an engine with caller-supplied analyzers. This
// is the seam used by tests and by integrations that sharpen individual
// analyzers.
func NewWithAnalyzers(text, email, url, platform analyzers.Analyzer) *JobGuard {
	return &JobGuard{
		text:     text,
		email:    email,
		url:      url,
		platform: platform,
	}
}

// Assess runs all four analyzers over the input and aggregates their
// findings into a single assessment.
//
// Assess never fails: analyzer anomalies surface as findings, and every
// aggregation branch is total (guarded denominators, clamped outputs).
func (g *JobGuard) Assess(input Input) models.Assessment {
	results := g.runAnalyzers(input)

	score := aggregateScore(results, input)
	verdict := verdictFor(score)
	confidence := confidenceLevelFor(results, input)
	flags := renderFlags(results)
	explanation := renderExplanation(results, score, verdict, confidence)

	return models.Assessment{
		RiskScore:   score,
		Flags:       flags,
		Explanation: explanation,
		Verdict:     verdict,
		Confidence:  confidence,
	}
}

// runAnalyzers fans the four analyzers out and joins on all results.
// Each analyzer touches only its own input, so no synchronization beyond
// the join is needed.
func (g *JobGuard) runAnalyzers(input Input) map[models.Category]models.CategoryResult {
	var (
		textRes, emailRes, urlRes, platformRes models.CategoryResult
		grp                                    errgroup.Group
	)

	grp.Go(func() error { textRes = g.text.Analyze(input.JobText); return nil })
	grp.Go(func() error { emailRes = g.email.Analyze(input.RecruiterEmail); return nil })
	grp.Go(func() error { urlRes = g.url.Analyze(input.CompanyURL); return nil })
	grp.Go(func() error { platformRes = g.platform.Analyze(input.PlatformSource); return nil })
	_ = grp.Wait() // analyzers never error

	return map[models.Category]models.CategoryResult{
		models.CategoryTextAnalysis:        textRes,
		models.CategoryEmailValidation:     emailRes,
		models.CategoryURLValidation:       urlRes,
		models.CategoryPlatformCredibility: platformRes,
	}
}
