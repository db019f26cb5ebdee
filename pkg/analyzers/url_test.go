package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLAnalyzerAbsentIsNeutral(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("")
	assert.Empty(t, res.Findings)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestURLAnalyzerInvalidFormat(t *testing.T) {
	a := NewURLAnalyzer()

	tests := []string{
		"notaurl",
		"ftp://files.example.org",
		"www.missing-scheme.com",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			res := a.Analyze(raw)
			f := findByDescription(t, res.Findings, "Invalid URL format")
			assert.Equal(t, 90, f.Severity)
			assert.Equal(t, 0.9, res.Confidence)
		})
	}
}

func TestURLAnalyzerShortener(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("https://bit.ly/job123")
	findByDescription(t, res.Findings, "URL shortening service")
	findByDescription(t, res.Findings, "(bit.ly)")
}

func TestURLAnalyzerIPAddress(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("http://192.168.1.50:8080/careers")
	f := findByDescription(t, res.Findings, "IP address instead of domain")
	assert.Equal(t, 70, f.Severity)

	port := findByDescription(t, res.Findings, "suspicious port number: 8080")
	assert.Equal(t, 45, port.Severity)
}

func TestURLAnalyzerPlaceholderDomain(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("https://example.com")
	f := findByDescription(t, res.Findings, "generic placeholder")
	assert.Equal(t, 90, f.Severity)
}

func TestURLAnalyzerTyposquatting(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("https://gooogle.com/jobs")
	f := findByDescription(t, res.Findings, "typosquatting")
	assert.Equal(t, 85, f.Severity)
}

func TestURLAnalyzerExcessiveSubdomains(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("https://a.b.c.d.example-jobs.net/apply")
	findByDescription(t, res.Findings, "excessive number of subdomains")
}

func TestURLAnalyzerSuspiciousKeywords(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("https://free-jobs-fast.com")
	findByDescription(t, res.Findings, "suspicious keywords in domain")
}

func TestURLAnalyzerCleanURL(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("https://www.acme-corp.com/careers")
	require.Empty(t, res.Findings)
	assert.Equal(t, 0.9, res.Confidence)
}

func TestURLAnalyzerPlainHTTPNotPenalized(t *testing.T) {
	a := NewURLAnalyzer()

	res := a.Analyze("http://www.acme-corp.com/careers")
	assert.Empty(t, res.Findings)
}
