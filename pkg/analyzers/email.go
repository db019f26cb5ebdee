package analyzers

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// EmailAnalyzer validates recruiter email shape and checks the address
// against disposable-provider, typosquatting, and suspicious-pattern
// tables. An absent email is neutral: many legitimate postings simply
// don't include one.
type EmailAnalyzer struct {
	formatRe *regexp.Regexp

	suspicious []emailPattern

	disposableDomains   map[string]struct{}
	typosquattingDomains map[string]struct{}
	suspiciousTLDs      []string
	randomDomainRe      *regexp.Regexp
	disposableKeywords  []string

	majorProviders      map[string]struct{}
	scamUsernameWords   []string
	unprofessionalRes   []*regexp.Regexp
}

type emailPattern struct {
	re          *regexp.Regexp
	severity    int
	description string
}

// NewEmailAnalyzer builds the analyzer with its static rule tables.
func NewEmailAnalyzer() *EmailAnalyzer {
	return &EmailAnalyzer{
		formatRe: regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`),
		suspicious: []emailPattern{
			{
				re:          regexp.MustCompile(`(?i)@(?:10minutemail|tempmail|guerrillamail|mailinator|throwaway)`),
				severity:    85,
				description: "Uses temporary/disposable email service",
			},
			{
				re:          regexp.MustCompile(`^[a-zA-Z0-9]{20,}@`),
				severity:    60,
				description: "Username appears to be randomly generated",
			},
			{
				re:          regexp.MustCompile(`^[0-9]+@`),
				severity:    40,
				description: "Username contains only numbers",
			},
			{
				re:          regexp.MustCompile(`(?i)\.(?:tk|ml|ga|cf|click|download|zip)$`),
				severity:    70,
				description: "Uses suspicious top-level domain",
			},
		},
		disposableDomains: toSet(
			"10minutemail.com", "tempmail.org", "guerrillamail.com",
			"mailinator.com", "throwaway.email", "temp-mail.org",
			"fakeinbox.com", "dispostable.com", "yopmail.com",
		),
		typosquattingDomains: toSet(
			"gmai1.com", "yaho0.com", "hotmai1.com", "outlok.com",
		),
		suspiciousTLDs: []string{".tk", ".ml", ".ga", ".cf", ".click", ".download", ".zip"},
		randomDomainRe: regexp.MustCompile(`^[a-z0-9]{15,}\.(?:com|net|org)$`),
		disposableKeywords: []string{"temp", "throw", "disposable", "fake", "10min", "guerrilla"},
		majorProviders: toSet(
			"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
			"aol.com", "icloud.com", "protonmail.com", "zoho.com",
		),
		scamUsernameWords: []string{"money", "cash", "urgent", "immediate", "quick", "easy", "guaranteed"},
		unprofessionalRes: []*regexp.Regexp{
			regexp.MustCompile(`(?:money|cash|rich|wealth|profit)`),
			regexp.MustCompile(`(?:urgent|asap|quick|fast|easy)`),
			regexp.MustCompile(`[xX]{3,}`),
			regexp.MustCompile(`\d{6,}`),
		},
	}
}

func toSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (a *EmailAnalyzer) Name() string { return "EmailAnalyzer" }

func (a *EmailAnalyzer) Category() models.Category { return models.CategoryEmailValidation }

// Analyze inspects the recruiter email. Risk is only added when an email
// is present and explicitly suspicious.
func (a *EmailAnalyzer) Analyze(recruiterEmail string) models.CategoryResult {
	if strings.TrimSpace(recruiterEmail) == "" {
		return models.CategoryResult{
			Confidence:   1.0,
			AnalyzerName: a.Name(),
		}
	}

	email := strings.ToLower(strings.TrimSpace(recruiterEmail))
	var findings []models.Finding

	formatValid := a.formatRe.MatchString(email)
	if !formatValid {
		findings = append(findings, models.Finding{
			Category:    models.CategoryEmailValidation,
			Severity:    90,
			Description: "Invalid email format",
			Confidence:  1.0,
		})
	} else {
		username, domain, _ := strings.Cut(email, "@")

		if len(username) > 64 { // RFC 5321 limit
			findings = append(findings, models.Finding{
				Category:    models.CategoryEmailValidation,
				Severity:    60,
				Description: "Email username exceeds recommended length",
				Confidence:  0.8,
			})
		}
		if len(domain) > 253 {
			findings = append(findings, models.Finding{
				Category:    models.CategoryEmailValidation,
				Severity:    70,
				Description: "Email domain exceeds maximum length",
				Confidence:  0.9,
			})
		}

		findings = a.checkSuspiciousPatterns(email, findings)
		findings = a.checkDomainReputation(domain, findings)
		findings = a.checkDisposableKeywords(domain, findings)
		findings = a.checkScamCharacteristics(username, domain, findings)
	}

	return models.CategoryResult{
		Findings:     findings,
		Confidence:   a.confidence(formatValid, len(findings)),
		AnalyzerName: a.Name(),
	}
}

func (a *EmailAnalyzer) checkSuspiciousPatterns(email string, findings []models.Finding) []models.Finding {
	for _, p := range a.suspicious {
		if p.re.MatchString(email) {
			findings = append(findings, models.Finding{
				Category:    models.CategoryEmailValidation,
				Severity:    p.severity,
				Description: p.description,
				Confidence:  0.8,
			})
		}
	}
	return findings
}

func (a *EmailAnalyzer) checkDomainReputation(domain string, findings []models.Finding) []models.Finding {
	if _, ok := a.disposableDomains[domain]; ok {
		return append(findings, models.Finding{
			Category:    models.CategoryEmailValidation,
			Severity:    80,
			Description: "Uses known disposable email domain",
			Confidence:  0.9,
		})
	}

	if _, ok := a.typosquattingDomains[domain]; ok {
		findings = append(findings, models.Finding{
			Category:    models.CategoryEmailValidation,
			Severity:    75,
			Description: "Domain appears to be typosquatting a legitimate service",
			Confidence:  0.8,
		})
	}

	// First matching TLD wins.
	for _, tld := range a.suspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			findings = append(findings, models.Finding{
				Category:    models.CategoryEmailValidation,
				Severity:    50,
				Description: fmt.Sprintf("Uses potentially suspicious TLD: %s", tld),
				Confidence:  0.6,
			})
			break
		}
	}

	if a.randomDomainRe.MatchString(domain) {
		findings = append(findings, models.Finding{
			Category:    models.CategoryEmailValidation,
			Severity:    55,
			Description: "Domain name appears randomly generated",
			Confidence:  0.7,
		})
	}
	return findings
}

func (a *EmailAnalyzer) checkDisposableKeywords(domain string, findings []models.Finding) []models.Finding {
	for _, kw := range a.disposableKeywords {
		if strings.Contains(domain, kw) {
			findings = append(findings, models.Finding{
				Category:    models.CategoryEmailValidation,
				Severity:    70,
				Description: fmt.Sprintf("Domain contains disposable email indicator: '%s'", kw),
				Confidence:  0.7,
			})
			break
		}
	}
	return findings
}

// checkScamCharacteristics flags personal-provider addresses only when the
// username itself carries scam vocabulary. A recruiter on gmail is common;
// easymoney2024@gmail.com is not.
func (a *EmailAnalyzer) checkScamCharacteristics(username, domain string, findings []models.Finding) []models.Finding {
	if _, ok := a.majorProviders[domain]; ok {
		for _, kw := range a.scamUsernameWords {
			if strings.Contains(username, kw) {
				findings = append(findings, models.Finding{
					Category:    models.CategoryEmailValidation,
					Severity:    60,
					Description: "Personal email with finance/urgency keywords",
					Confidence:  0.7,
				})
				break
			}
		}
	}

	for _, re := range a.unprofessionalRes {
		if re.MatchString(username) {
			findings = append(findings, models.Finding{
				Category:    models.CategoryEmailValidation,
				Severity:    50,
				Description: "Email username contains suspicious keywords",
				Confidence:  0.7,
			})
			break
		}
	}
	return findings
}

func (a *EmailAnalyzer) confidence(formatValid bool, findingCount int) float64 {
	if !formatValid {
		// Format validation itself is near-certain.
		return 0.9
	}
	c := 0.8 + 0.1
	if findingCount > 0 {
		c += math.Min(0.1, float64(findingCount)*0.02)
	}
	return math.Min(1.0, c)
}
