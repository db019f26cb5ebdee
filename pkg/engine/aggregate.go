package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// Category weights for the blended score. Text analysis dominates; the
// three metadata categories share the remaining 30%. The general category
// contributes findings to flags and explanations but carries no weight in
// the numeric blend. Weights sum to exactly 1.0 (asserted in tests).
var categoryWeights = map[models.Category]float64{
	models.CategoryTextAnalysis:        0.70,
	models.CategoryEmailValidation:     0.12,
	models.CategoryURLValidation:       0.10,
	models.CategoryPlatformCredibility: 0.08,
	models.CategoryGeneral:             0.0,
}

// Verdict thresholds. Fixed constants, not runtime-configurable: callers
// that need different policy should threshold on the score themselves.
const (
	safeMax    = 30 // 0-30: Safe
	cautionMax = 65 // 31-65: Caution, 66-100: High Risk
)

// Text findings beyond this count switch the text category from
// confidence-weighted averaging to a worst-signal-dominates rule.
const denseTextFindings = 5

// Platform multiplier phrases. Matched case-insensitively against
// platform finding descriptions; the highest applicable multiplier wins.
var platformMultipliers = []struct {
	phrase     string
	multiplier float64
}{
	{"high fraud", 1.4},
	{"messaging apps", 1.3},
	{"social media", 1.2},
	{"lower credibility", 1.1},
}

// aggregateScore combines the per-category findings into the final 0-100
// risk score, in four fixed steps: per-category scoring, the
// confidence-adjusted weighted blend, the professionalism offset, and the
// platform multiplier. Step order is load-bearing: the offset is
// subtracted before the multiplier scales the result.
func aggregateScore(results map[models.Category]models.CategoryResult, input Input) int {
	byCategory := groupFindings(results)

	weightedScore := 0.0
	totalWeight := 0.0
	for _, category := range models.Categories {
		score, confidence := categoryScore(category, byCategory[category])
		adjusted := categoryWeights[category] * confidence
		weightedScore += score * adjusted
		totalWeight += adjusted
	}

	// A category with no signal is excluded from the denominator rather
	// than dragging the average down: absence of evidence is not evidence
	// of safety, but it is not risk either.
	baseScore := 0.0
	if totalWeight > 0 {
		baseScore = weightedScore / totalWeight
	}

	baseScore = math.Max(0, baseScore-professionalismBonus(input.JobText))
	adjusted := baseScore * platformMultiplier(byCategory[models.CategoryPlatformCredibility])

	return clampScore(int(math.Round(adjusted)))
}

// groupFindings pools findings from all analyzers and groups them by the
// category each finding carries.
func groupFindings(results map[models.Category]models.CategoryResult) map[models.Category][]models.Finding {
	grouped := make(map[models.Category][]models.Finding)
	for _, category := range models.Categories {
		if res, ok := results[category]; ok {
			for _, f := range res.Findings {
				grouped[f.Category] = append(grouped[f.Category], f)
			}
		}
	}
	return grouped
}

// categoryScore reduces one category's findings to a (score, confidence)
// pair.
//
// Dense text evidence (more than denseTextFindings findings) takes the
// maximum weight among the top 3 findings instead of an average: a posting
// drowning in fraud signals should not have its worst signal diluted by
// its mild ones. Everything else is a confidence-weighted severity
// average.
func categoryScore(category models.Category, findings []models.Finding) (float64, float64) {
	if len(findings) == 0 {
		return 0, 0
	}

	if category == models.CategoryTextAnalysis && len(findings) > denseTextFindings {
		top := make([]models.Finding, len(findings))
		copy(top, findings)
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Weight() > top[j].Weight()
		})
		top = top[:3]

		maxWeighted := 0.0
		maxConfidence := 0.0
		for _, f := range top {
			maxWeighted = math.Max(maxWeighted, f.Weight())
			maxConfidence = math.Max(maxConfidence, f.Confidence)
		}
		return maxWeighted, maxConfidence
	}

	totalWeighted := 0.0
	totalConfidence := 0.0
	for _, f := range findings {
		totalWeighted += f.Weight()
		totalConfidence += f.Confidence
	}
	if totalConfidence == 0 {
		return 0, 0
	}
	score := totalWeighted / totalConfidence
	confidence := math.Min(1.0, totalConfidence/float64(len(findings)))
	return score, confidence
}

// platformMultiplier scales the offset-adjusted score by the riskiest
// contact channel signal found by the platform analyzer.
func platformMultiplier(findings []models.Finding) float64 {
	multiplier := 1.0
	for _, f := range findings {
		desc := strings.ToLower(f.Description)
		for _, pm := range platformMultipliers {
			if strings.Contains(desc, pm.phrase) {
				multiplier = math.Max(multiplier, pm.multiplier)
			}
		}
	}
	return multiplier
}

func verdictFor(score int) models.Verdict {
	switch {
	case score <= safeMax:
		return models.VerdictSafe
	case score <= cautionMax:
		return models.VerdictCaution
	default:
		return models.VerdictHighRisk
	}
}

// confidenceLevelFor derives the confidence label from input completeness
// and signal consistency. It is deliberately independent of the numeric
// score: a score of 90 built on one thin signal deserves less trust than
// a 40 built on complete, consistent evidence.
func confidenceLevelFor(results map[models.Category]models.CategoryResult, input Input) models.ConfidenceLevel {
	hasEmail := strings.TrimSpace(input.RecruiterEmail) != ""
	hasURL := strings.TrimSpace(input.CompanyURL) != ""
	hasPlatform := strings.TrimSpace(input.PlatformSource) != ""

	present := 0
	for _, ok := range []bool{hasEmail, hasURL, hasPlatform} {
		if ok {
			present++
		}
	}
	completeness := float64(present) / 3.0

	textResult := results[models.CategoryTextAnalysis]
	textConfidence := textResult.Confidence

	highRiskText := anySeverityAtLeast(textResult.Findings, 70)
	highRiskMetadata := anySeverityAtLeast(results[models.CategoryEmailValidation].Findings, 70) ||
		anySeverityAtLeast(results[models.CategoryURLValidation].Findings, 70)

	// Contradictory evidence: one side screams fraud while the other is
	// silent. Complete inputs with consistent signals earn High.
	consistent := highRiskText == highRiskMetadata
	if completeness >= 2.0/3.0 && textConfidence >= 0.8 && consistent {
		return models.ConfidenceHigh
	}

	if textConfidence >= 0.7 && len(strings.Fields(input.JobText)) >= 50 {
		return models.ConfidenceMedium
	}

	return models.ConfidenceLow
}

func anySeverityAtLeast(findings []models.Finding, threshold int) bool {
	for _, f := range findings {
		if f.Severity >= threshold {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
