package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobguard/go-jobguard/pkg/models"
)

func TestCategoryWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, c := range models.Categories {
		w, ok := categoryWeights[c]
		require.True(t, ok, "category %s has no weight", c)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestVerdictBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  models.Verdict
	}{
		{0, models.VerdictSafe},
		{30, models.VerdictSafe},
		{31, models.VerdictCaution},
		{65, models.VerdictCaution},
		{66, models.VerdictHighRisk},
		{100, models.VerdictHighRisk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, verdictFor(tt.score), "score %d", tt.score)
	}
}

func TestCategoryScoreEmpty(t *testing.T) {
	score, conf := categoryScore(models.CategoryTextAnalysis, nil)
	assert.Zero(t, score)
	assert.Zero(t, conf)
}

func TestCategoryScoreWeightedAverage(t *testing.T) {
	findings := []models.Finding{
		{Category: models.CategoryEmailValidation, Severity: 80, Confidence: 0.8},
		{Category: models.CategoryEmailValidation, Severity: 40, Confidence: 0.6},
	}

	score, conf := categoryScore(models.CategoryEmailValidation, findings)
	// (80*0.8 + 40*0.6) / (0.8 + 0.6)
	assert.InDelta(t, 62.857, score, 0.001)
	assert.InDelta(t, 0.7, conf, 1e-9)
}

func TestCategoryScoreDenseTextTakesWorstOfTopThree(t *testing.T) {
	findings := []models.Finding{
		{Category: models.CategoryTextAnalysis, Severity: 100, Confidence: 0.9},
		{Category: models.CategoryTextAnalysis, Severity: 90, Confidence: 0.9},
		{Category: models.CategoryTextAnalysis, Severity: 80, Confidence: 0.8},
		{Category: models.CategoryTextAnalysis, Severity: 50, Confidence: 0.7},
		{Category: models.CategoryTextAnalysis, Severity: 30, Confidence: 0.8},
		{Category: models.CategoryTextAnalysis, Severity: 20, Confidence: 0.7},
	}

	score, conf := categoryScore(models.CategoryTextAnalysis, findings)
	assert.InDelta(t, 90.0, score, 1e-9) // 100 * 0.9
	assert.InDelta(t, 0.9, conf, 1e-9)
}

func TestCategoryScoreFiveTextFindingsStillAverages(t *testing.T) {
	findings := make([]models.Finding, 5)
	for i := range findings {
		findings[i] = models.Finding{Category: models.CategoryTextAnalysis, Severity: 60, Confidence: 0.8}
	}

	score, conf := categoryScore(models.CategoryTextAnalysis, findings)
	assert.InDelta(t, 60.0, score, 1e-9)
	assert.InDelta(t, 0.8, conf, 1e-9)
}

func TestCategoryScoreDenseRuleOnlyForText(t *testing.T) {
	findings := make([]models.Finding, 7)
	for i := range findings {
		findings[i] = models.Finding{Category: models.CategoryEmailValidation, Severity: 50, Confidence: 0.8}
	}

	score, _ := categoryScore(models.CategoryEmailValidation, findings)
	assert.InDelta(t, 50.0, score, 1e-9)
}

func TestPlatformMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		findings []models.Finding
		want     float64
	}{
		{"no findings", nil, 1.0},
		{
			"lower credibility",
			[]models.Finding{{Description: "Platform has lower credibility rating"}},
			1.1,
		},
		{
			"max rule wins",
			[]models.Finding{
				{Description: "Platform has lower credibility rating"},
				{Description: "Messaging apps are commonly used for scams"},
				{Description: "Platform is known for high fraud rates"},
			},
			1.4,
		},
		{
			"social media",
			[]models.Finding{{Description: "Social media platforms have higher fraud risk"}},
			1.2,
		},
		{
			"unrelated descriptions",
			[]models.Finding{{Description: "Platform is not recognized or well-known"}},
			1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, platformMultiplier(tt.findings), 1e-9)
		})
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 57, clampScore(57))
	assert.Equal(t, 100, clampScore(100))
	assert.Equal(t, 100, clampScore(140))
}
