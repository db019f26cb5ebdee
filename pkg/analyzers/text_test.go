package analyzers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobguard/go-jobguard/pkg/models"
)

func TestTextAnalyzerEmptyText(t *testing.T) {
	a := NewTextAnalyzer()

	for _, input := range []string{"", "   ", "\n\t"} {
		res := a.Analyze(input)
		require.Len(t, res.Findings, 1)
		assert.Equal(t, 100, res.Findings[0].Severity)
		assert.Equal(t, 1.0, res.Findings[0].Confidence)
		assert.Equal(t, "Job text is empty or missing", res.Findings[0].Description)
		assert.Equal(t, 1.0, res.Confidence)
	}
}

func TestTextAnalyzerKeywordFamilies(t *testing.T) {
	a := NewTextAnalyzer()

	tests := []struct {
		name         string
		text         string
		wantContains string
		wantSeverity int
	}{
		{
			name:         "personal info single hit",
			text:         "Great remote opportunity, experience welcome. To enroll please share your SSN with the onboarding team before the first shift begins next month sometime.",
			wantContains: "personal info requests keywords: ssn",
			wantSeverity: 100,
		},
		{
			name:         "urgency two hits escalates",
			text:         "We need urgent hiring for this seasonal role, please start immediately if selected. Warehouse experience preferred but training is offered to suitable candidates during onboarding.",
			wantContains: "urgency pressure keywords",
			wantSeverity: 70,
		},
		{
			name:         "unrealistic promises",
			text:         "This is easy money for anyone with guaranteed income every single month, experience welcome. Positions are filling fast so please submit your application through the portal.",
			wantContains: "unrealistic promises keywords",
			wantSeverity: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Analyze(tt.text)
			f := findByDescription(t, res.Findings, tt.wantContains)
			assert.Equal(t, tt.wantSeverity, f.Severity)
		})
	}
}

func TestTextAnalyzerPatterns(t *testing.T) {
	a := NewTextAnalyzer()

	text := "Apply for this office role!! Compensation is $5000/week with experience welcome. Duties cover filing, scheduling and answering correspondence for the regional office team members."
	res := a.Analyze(text)

	exclaim := findByDescription(t, res.Findings, "Multiple exclamation marks")
	assert.Equal(t, 20, exclaim.Severity)

	salary := findByDescription(t, res.Findings, "Unrealistic salary promises")
	assert.Equal(t, 90, salary.Severity)
	assert.Equal(t, 0.9, salary.Confidence)

	findByDescription(t, res.Findings, "Specific dollar amounts")
	findByDescription(t, res.Findings, "currency symbols")
}

func TestTextAnalyzerContentQuality(t *testing.T) {
	a := NewTextAnalyzer()

	t.Run("very short description", func(t *testing.T) {
		res := a.Analyze("Assistant wanted, good pay, experience welcome.")
		f := findByDescription(t, res.Findings, "Very short job description")
		assert.Equal(t, 70, f.Severity)
	})

	t.Run("unusually long description", func(t *testing.T) {
		// ~1500 words of otherwise unremarkable prose.
		text := repeatSentence("The team values experience with thoughtful engineering discussion and careful review of designs before implementation begins. ", 94)
		res := a.Analyze(text)
		f := findByDescription(t, res.Findings, "Unusually long job description")
		assert.Equal(t, 40, f.Severity)
		assert.Equal(t, 0.6, f.Confidence)
	})

	t.Run("missing requirements", func(t *testing.T) {
		res := a.Analyze("We hire friendly people for our downtown cafe. Shifts are flexible and meals are included. Weekend availability helps. Apply in person at the counter during weekday mornings please.")
		f := findByDescription(t, res.Findings, "No specific requirements")
		assert.Equal(t, 50, f.Severity)
	})
}

func TestTextAnalyzerBenignTextHasNoFindings(t *testing.T) {
	a := NewTextAnalyzer()

	text := "We are seeking a software engineer with five years of experience building distributed systems. " +
		"The role includes design reviews, mentoring, and collaboration with product teams across the company."
	res := a.Analyze(text)

	assert.Empty(t, res.Findings)
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)
}

func TestTextAnalyzerConfidenceGrowsWithLength(t *testing.T) {
	a := NewTextAnalyzer()

	short := a.Analyze("We are seeking a software engineer with five years of experience building distributed systems. The role includes design reviews, mentoring, and collaboration with product teams across the company.")
	long := a.Analyze(repeatSentence("The team values experience with thoughtful engineering discussion and careful review of designs before implementation begins. ", 12))

	assert.Greater(t, long.Confidence, short.Confidence)
}

func repeatSentence(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

// findByDescription fails the test if no finding description contains the
// given substring.
func findByDescription(t *testing.T, findings []models.Finding, substr string) models.Finding {
	t.Helper()
	for _, f := range findings {
		if strings.Contains(f.Description, substr) {
			return f
		}
	}
	t.Fatalf("no finding containing %q in %v", substr, descriptions(findings))
	return models.Finding{}
}

func descriptions(findings []models.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Description
	}
	return out
}
