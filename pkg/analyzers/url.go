package analyzers

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// URLAnalyzer validates company URL shape and checks for shorteners,
// raw IPs, throwaway TLDs, and known-bad domains. Like the email
// analyzer, an absent URL is neutral.
type URLAnalyzer struct {
	formatRe *regexp.Regexp

	suspicious []urlPattern

	typosquattingDomains map[string]struct{}
	genericSuspicious    map[string]struct{}
	shortenerServices    []string
	randomTLDRe          *regexp.Regexp
	suspiciousPorts      map[int]struct{}
}

type urlPattern struct {
	re          *regexp.Regexp
	severity    int
	description string
}

// NewURLAnalyzer builds the analyzer with its static rule tables.
func NewURLAnalyzer() *URLAnalyzer {
	return &URLAnalyzer{
		formatRe: regexp.MustCompile(`(?i)^https?://` +
			`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}\.?|` +
			`localhost|` +
			`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
			`(?::\d+)?` +
			`(?:/?|[/?]\S+)$`),
		suspicious: []urlPattern{
			{
				re:          regexp.MustCompile(`https?://\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`),
				severity:    70,
				description: "Uses IP address instead of domain name",
			},
			{
				re:          regexp.MustCompile(`(?i)\.(?:tk|ml|ga|cf|click|download|zip|bit|ly|tinyurl)(?:/|$)`),
				severity:    60,
				description: "Uses suspicious top-level domain",
			},
			{
				re:          regexp.MustCompile(`(?i)(?:bit\.ly|tinyurl|t\.co|goo\.gl|short\.link|ow\.ly)`),
				severity:    75,
				description: "Uses URL shortening service",
			},
			{
				re:          regexp.MustCompile(`^https?://(?:[^./]+\.){4,}`),
				severity:    55,
				description: "Has excessive number of subdomains",
			},
			{
				re:          regexp.MustCompile(`(?i)(?:free|temp|test|demo|fake|scam|phish)`),
				severity:    65,
				description: "Contains suspicious keywords in domain",
			},
			{
				re:          regexp.MustCompile(`(?i)https?://[a-z0-9]{15,}\.(?:com|net|org)(?:/|$)`),
				severity:    50,
				description: "Domain appears randomly generated",
			},
		},
		typosquattingDomains: toSet(
			"gooogle.com", "microsooft.com", "amazoon.com", "facebok.com",
			"linkedinn.com", "appple.com", "netflixx.com",
		),
		genericSuspicious: toSet(
			"example.com", "test.com", "demo.com", "temp.com",
			"fake.com", "scam.com", "phishing.com",
		),
		shortenerServices: []string{
			"bit.ly", "tinyurl.com", "t.co", "goo.gl", "short.link",
			"ow.ly", "is.gd", "buff.ly", "rebrand.ly", "cutt.ly",
		},
		randomTLDRe: regexp.MustCompile(`^[a-z0-9]{8,}\.(tk|ml|ga|cf)$`),
		suspiciousPorts: map[int]struct{}{
			8080: {}, 8000: {}, 3000: {}, 4000: {}, 5000: {}, 9000: {}, 9999: {},
		},
	}
}

func (a *URLAnalyzer) Name() string { return "URLAnalyzer" }

func (a *URLAnalyzer) Category() models.Category { return models.CategoryURLValidation }

// Analyze inspects the company URL. Risk is only added when a URL is
// present and explicitly suspicious; plain HTTP is deliberately not
// penalized.
func (a *URLAnalyzer) Analyze(companyURL string) models.CategoryResult {
	raw := strings.TrimSpace(companyURL)
	if raw == "" {
		return models.CategoryResult{
			Confidence:   1.0,
			AnalyzerName: a.Name(),
		}
	}

	var findings []models.Finding
	parsed, formatValid := a.validateFormat(raw, &findings)

	if formatValid {
		findings = a.checkSuspiciousPatterns(raw, findings)
		findings = a.checkDomainCharacteristics(parsed, findings)
		findings = a.checkShorteners(raw, findings)
		findings = a.checkPort(parsed, findings)
	}

	return models.CategoryResult{
		Findings:     findings,
		Confidence:   a.confidence(formatValid, len(findings)),
		AnalyzerName: a.Name(),
	}
}

// validateFormat reports whether the URL is well-formed enough for the
// deeper checks. Anomalies become findings rather than errors.
func (a *URLAnalyzer) validateFormat(raw string, findings *[]models.Finding) (*url.URL, bool) {
	if !a.formatRe.MatchString(raw) {
		*findings = append(*findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    90,
			Description: "Invalid URL format",
			Confidence:  1.0,
		})
		return nil, false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		*findings = append(*findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    85,
			Description: "URL cannot be parsed properly",
			Confidence:  0.9,
		})
		return nil, false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		*findings = append(*findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    80,
			Description: "Missing or invalid URL scheme (http/https)",
			Confidence:  0.9,
		})
		return nil, false
	}

	if parsed.Host == "" {
		*findings = append(*findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    95,
			Description: "Missing domain in URL",
			Confidence:  1.0,
		})
		return nil, false
	}

	if len(raw) > 2000 {
		*findings = append(*findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    50,
			Description: "URL is unusually long",
			Confidence:  0.7,
		})
	}

	return parsed, true
}

func (a *URLAnalyzer) checkSuspiciousPatterns(raw string, findings []models.Finding) []models.Finding {
	for _, p := range a.suspicious {
		if p.re.MatchString(raw) {
			findings = append(findings, models.Finding{
				Category:    models.CategoryURLValidation,
				Severity:    p.severity,
				Description: p.description,
				Confidence:  0.8,
			})
		}
	}
	return findings
}

func (a *URLAnalyzer) checkDomainCharacteristics(parsed *url.URL, findings []models.Finding) []models.Finding {
	domain := strings.ToLower(parsed.Hostname())

	if _, ok := a.typosquattingDomains[domain]; ok {
		return append(findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    85,
			Description: "Domain is known to be suspicious (typosquatting)",
			Confidence:  0.9,
		})
	}
	if _, ok := a.genericSuspicious[domain]; ok {
		return append(findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    90,
			Description: "Domain is known to be suspicious (generic placeholder)",
			Confidence:  0.9,
		})
	}

	label, _, _ := strings.Cut(domain, ".")

	if label != "" && isAllDigits(label) {
		findings = append(findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    70,
			Description: "Domain name consists only of numbers",
			Confidence:  0.8,
		})
	}

	if strings.Count(label, "-") > 4 {
		findings = append(findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    50,
			Description: "Domain contains excessive hyphens",
			Confidence:  0.7,
		})
	}

	if a.randomTLDRe.MatchString(domain) {
		findings = append(findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    65,
			Description: "Random domain with suspicious TLD",
			Confidence:  0.8,
		})
	}
	return findings
}

// checkShorteners is first-match-wins: one shortener hit is enough.
func (a *URLAnalyzer) checkShorteners(raw string, findings []models.Finding) []models.Finding {
	lower := strings.ToLower(raw)
	for _, svc := range a.shortenerServices {
		if strings.Contains(lower, svc) {
			findings = append(findings, models.Finding{
				Category:    models.CategoryURLValidation,
				Severity:    70,
				Description: fmt.Sprintf("Uses URL shortening service (%s)", svc),
				Confidence:  0.8,
			})
			break
		}
	}
	return findings
}

func (a *URLAnalyzer) checkPort(parsed *url.URL, findings []models.Finding) []models.Finding {
	portStr := parsed.Port()
	if portStr == "" {
		return findings
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return findings
	}
	if _, ok := a.suspiciousPorts[port]; ok {
		findings = append(findings, models.Finding{
			Category:    models.CategoryURLValidation,
			Severity:    45,
			Description: fmt.Sprintf("Uses potentially suspicious port number: %d", port),
			Confidence:  0.6,
		})
	}
	return findings
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (a *URLAnalyzer) confidence(formatValid bool, findingCount int) float64 {
	if !formatValid {
		return 0.9
	}
	c := 0.8 + 0.1
	if findingCount > 0 {
		c += math.Min(0.1, float64(findingCount)*0.02)
	}
	return math.Min(1.0, c)
}
