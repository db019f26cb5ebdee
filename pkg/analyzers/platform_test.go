package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAnalyzerEmptyIsHardFailure(t *testing.T) {
	a := NewPlatformAnalyzer()

	res := a.Analyze("  ")
	require.Len(t, res.Findings, 1)
	assert.Equal(t, 100, res.Findings[0].Severity)
	assert.Equal(t, "Platform source is empty or missing", res.Findings[0].Description)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestPlatformAnalyzerNormalize(t *testing.T) {
	a := NewPlatformAnalyzer()

	tests := []struct {
		input string
		want  string
	}{
		{"linkedin.com", "linkedin.com"},
		{"linkedin", "linkedin.com"},
		{"https://www.linkedin.com/jobs/view/123", "linkedin.com"},
		{"t.me/jobchannel", "telegram.org"},
		{"whatsapp", "whatsapp.com"},
		{"chrome extension", "chrome"},
		{"phone call", "phone"},
		{"some-unknown-board", "some-unknown-board"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Normalize(tt.input))
		})
	}
}

func TestPlatformAnalyzerCredibleBoard(t *testing.T) {
	a := NewPlatformAnalyzer()

	for _, platform := range []string{"linkedin", "Indeed", "glassdoor.com", "chrome extension"} {
		t.Run(platform, func(t *testing.T) {
			res := a.Analyze(platform)
			assert.Empty(t, res.Findings)
			assert.GreaterOrEqual(t, res.Confidence, 0.9)
		})
	}
}

func TestPlatformAnalyzerMessagingApp(t *testing.T) {
	a := NewPlatformAnalyzer()

	res := a.Analyze("telegram")

	tier := findByDescription(t, res.Findings, "lower credibility rating")
	assert.Equal(t, 50, tier.Severity)

	risk := findByDescription(t, res.Findings, "Messaging apps are commonly used for scams")
	assert.Equal(t, 60, risk.Severity)

	findByDescription(t, res.Findings, "Contact only through messaging apps")
}

func TestPlatformAnalyzerSMS(t *testing.T) {
	a := NewPlatformAnalyzer()

	res := a.Analyze("sms")

	fraud := findByDescription(t, res.Findings, "high fraud rates")
	assert.Equal(t, 80, fraud.Severity)
	findByDescription(t, res.Findings, "Direct contact methods lack platform verification")
	findByDescription(t, res.Findings, "lacks employer verification")
}

func TestPlatformAnalyzerModerateTier(t *testing.T) {
	a := NewPlatformAnalyzer()

	res := a.Analyze("craigslist")
	tier := findByDescription(t, res.Findings, "moderate credibility rating")
	assert.Equal(t, 25, tier.Severity)
	findByDescription(t, res.Findings, "lacks employer verification")
}

func TestPlatformAnalyzerUnknownPlatform(t *testing.T) {
	a := NewPlatformAnalyzer()

	res := a.Analyze("obscure-job-site-nobody-knows")
	f := findByDescription(t, res.Findings, "not recognized or well-known")
	assert.Equal(t, 60, f.Severity)
}

func TestPlatformAnalyzerVagueDescription(t *testing.T) {
	a := NewPlatformAnalyzer()

	res := a.Analyze("a website")
	findByDescription(t, res.Findings, "vague or non-specific")
}
