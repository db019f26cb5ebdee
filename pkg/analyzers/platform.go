package analyzers

import (
	"math"
	"regexp"
	"strings"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// PlatformAnalyzer scores the credibility of the channel the posting came
// from. Channel names are normalized first (linkedin, www.linkedin.com and
// https://linkedin.com/jobs all map to linkedin.com), then looked up in a
// static credibility table. Low tiers and risky channel classes produce
// findings whose descriptions carry the phrases the aggregation engine's
// platform multiplier keys on.
type PlatformAnalyzer struct {
	credibility map[string]int

	riskPatterns []platformRiskPattern

	normalizers []platformNormalizer

	messagingPlatforms  map[string]struct{}
	socialPlatforms     map[string]struct{}
	unverifiedPlatforms map[string]struct{}
	vagueWords          []string

	domainRe *regexp.Regexp
}

type platformRiskPattern struct {
	platforms   map[string]struct{}
	multiplier  float64
	description string
}

type platformNormalizer struct {
	re       *regexp.Regexp
	platform string
}

// NewPlatformAnalyzer builds the analyzer with its static credibility and
// risk tables.
func NewPlatformAnalyzer() *PlatformAnalyzer {
	credibility := map[string]int{
		// Tier 1: highly credible job boards (85+ adds no findings).
		"linkedin.com":      95,
		"indeed.com":        90,
		"glassdoor.com":     92,
		"monster.com":       88,
		"careerbuilder.com": 87,
		"ziprecruiter.com":  85,
		"dice.com":          90,
		"stackoverflow.com": 93,
		"github.com":        92,
		"angel.co":          88,
		"wellfound.com":     88,

		// Tier 2: moderate credibility.
		"craigslist.org":     70,
		"facebook.com":       75,
		"twitter.com":        72,
		"reddit.com":         73,
		"upwork.com":         78,
		"freelancer.com":     76,
		"fiverr.com":         74,
		"flexjobs.com":       82,
		"remote.co":          80,
		"weworkremotely.com": 81,
		"remoteok.io":        79,
		"joblist.com":        75,
		"xing.com":           77,
		"seek.com":           78,
		"chrome":             85, // browser extensions are neutral sources
		"firefox":            85,
		"safari":             85,
		"edge":               85,

		// Tier 3: low credibility contact channels.
		"telegram.org": 55,
		"whatsapp.com": 50,
		"instagram.com": 60,
		"tiktok.com":   45,
		"snapchat.com": 40,
		"discord.com":  58,
		"slack.com":    65,
		"email":        60,
		"sms":          45,
		"phone":        55,
	}

	return &PlatformAnalyzer{
		credibility: credibility,
		riskPatterns: []platformRiskPattern{
			{
				platforms:   toSet("facebook.com", "twitter.com", "instagram.com", "tiktok.com", "snapchat.com"),
				multiplier:  1.3,
				description: "Social media platforms have higher fraud risk",
			},
			{
				platforms:   toSet("telegram.org", "whatsapp.com", "discord.com"),
				multiplier:  1.5,
				description: "Messaging apps are commonly used for scams",
			},
			{
				platforms:   toSet("email", "sms", "phone"),
				multiplier:  1.2,
				description: "Direct contact methods lack platform verification",
			},
			{
				platforms:   toSet("upwork.com", "freelancer.com", "fiverr.com"),
				multiplier:  1.1,
				description: "Freelance platforms may have less employer verification",
			},
		},
		normalizers: []platformNormalizer{
			{regexp.MustCompile(`(?i)linkedin\.com|linkedin`), "linkedin.com"},
			{regexp.MustCompile(`(?i)indeed\.com|indeed`), "indeed.com"},
			{regexp.MustCompile(`(?i)glassdoor\.com|glassdoor`), "glassdoor.com"},
			{regexp.MustCompile(`(?i)monster\.com|monster`), "monster.com"},
			{regexp.MustCompile(`(?i)craigslist\.org|craigslist`), "craigslist.org"},
			{regexp.MustCompile(`(?i)facebook\.com|facebook|fb\.com`), "facebook.com"},
			{regexp.MustCompile(`(?i)twitter\.com|twitter|x\.com`), "twitter.com"},
			{regexp.MustCompile(`(?i)telegram\.org|telegram|t\.me`), "telegram.org"},
			{regexp.MustCompile(`(?i)whatsapp\.com|whatsapp`), "whatsapp.com"},
			{regexp.MustCompile(`(?i)^email$|^e-mail$|email contact|direct email`), "email"},
			{regexp.MustCompile(`(?i)^sms$|^text$|text message|phone text`), "sms"},
			{regexp.MustCompile(`(?i)^phone$|phone call|telephone|direct call`), "phone"},
			{regexp.MustCompile(`(?i)^chrome$|chrome extension|browser extension`), "chrome"},
			{regexp.MustCompile(`(?i)^firefox$|firefox extension`), "firefox"},
			{regexp.MustCompile(`(?i)^safari$|safari extension`), "safari"},
			{regexp.MustCompile(`(?i)^edge$|edge extension`), "edge"},
		},
		messagingPlatforms:  toSet("telegram.org", "whatsapp.com", "discord.com", "sms"),
		socialPlatforms:     toSet("facebook.com", "twitter.com", "instagram.com", "tiktok.com", "snapchat.com"),
		unverifiedPlatforms: toSet("email", "sms", "phone", "craigslist.org"),
		vagueWords:          []string{"website", "online", "internet", "web", "site"},
		domainRe:            regexp.MustCompile(`(?:https?://)?(?:www\.)?([^/\s]+)`),
	}
}

func (a *PlatformAnalyzer) Name() string { return "PlatformAnalyzer" }

func (a *PlatformAnalyzer) Category() models.Category { return models.CategoryPlatformCredibility }

// Analyze scores the platform source. Missing platform is a hard failure
// signal: callers always know where they found the posting.
func (a *PlatformAnalyzer) Analyze(platformSource string) models.CategoryResult {
	if strings.TrimSpace(platformSource) == "" {
		return models.CategoryResult{
			Findings: []models.Finding{{
				Category:    models.CategoryPlatformCredibility,
				Severity:    100,
				Description: "Platform source is empty or missing",
				Confidence:  1.0,
			}},
			Confidence:   1.0,
			AnalyzerName: a.Name(),
		}
	}

	platform := strings.ToLower(strings.TrimSpace(platformSource))
	normalized := a.Normalize(platform)

	var findings []models.Finding
	findings = a.checkCredibility(normalized, findings)
	findings = a.checkRiskPatterns(normalized, findings)
	findings = a.checkSuspiciousIndicators(normalized, platform, findings)

	return models.CategoryResult{
		Findings:     findings,
		Confidence:   a.confidence(normalized, len(findings)),
		AnalyzerName: a.Name(),
	}
}

// Normalize maps free-form platform strings onto credibility table keys.
// Unrecognized platforms pass through lowercased.
func (a *PlatformAnalyzer) Normalize(platform string) string {
	if _, ok := a.credibility[platform]; ok {
		return platform
	}

	// URL-shaped input: try the bare domain.
	if strings.Contains(platform, ".") && (strings.Contains(platform, "http") || strings.Contains(platform, "www")) {
		if m := a.domainRe.FindStringSubmatch(platform); m != nil {
			domain := strings.ToLower(m[1])
			if _, ok := a.credibility[domain]; ok {
				return domain
			}
		}
	}

	for _, n := range a.normalizers {
		if n.re.MatchString(platform) {
			return n.platform
		}
	}
	return platform
}

func (a *PlatformAnalyzer) checkCredibility(normalized string, findings []models.Finding) []models.Finding {
	score, known := a.credibility[normalized]
	if !known {
		return append(findings, models.Finding{
			Category:    models.CategoryPlatformCredibility,
			Severity:    60,
			Description: "Platform is not recognized or well-known",
			Confidence:  0.7,
		})
	}

	switch {
	case score < 50:
		findings = append(findings, models.Finding{
			Category:    models.CategoryPlatformCredibility,
			Severity:    80,
			Description: "Platform is known for high fraud rates",
			Confidence:  0.9,
		})
	case score < 70:
		findings = append(findings, models.Finding{
			Category:    models.CategoryPlatformCredibility,
			Severity:    50,
			Description: "Platform has lower credibility rating",
			Confidence:  0.8,
		})
	case score < 85:
		findings = append(findings, models.Finding{
			Category:    models.CategoryPlatformCredibility,
			Severity:    25,
			Description: "Platform has moderate credibility rating",
			Confidence:  0.6,
		})
	}
	// 85+ adds nothing.
	return findings
}

func (a *PlatformAnalyzer) checkRiskPatterns(normalized string, findings []models.Finding) []models.Finding {
	for _, rp := range a.riskPatterns {
		if _, ok := rp.platforms[normalized]; ok {
			severity := min(100, int(40*rp.multiplier))
			findings = append(findings, models.Finding{
				Category:    models.CategoryPlatformCredibility,
				Severity:    severity,
				Description: rp.description,
				Confidence:  0.8,
			})
		}
	}
	return findings
}

func (a *PlatformAnalyzer) checkSuspiciousIndicators(normalized, original string, findings []models.Finding) []models.Finding {
	if _, ok := a.messagingPlatforms[normalized]; ok {
		findings = append(findings, models.Finding{
			Category:    models.CategoryPlatformCredibility,
			Severity:    70,
			Description: "Contact only through messaging apps (red flag)",
			Confidence:  0.8,
		})
	}

	if _, ok := a.socialPlatforms[normalized]; ok {
		findings = append(findings, models.Finding{
			Category:    models.CategoryPlatformCredibility,
			Severity:    65,
			Description: "Job posting only on social media platforms",
			Confidence:  0.7,
		})
	}

	if _, ok := a.unverifiedPlatforms[normalized]; ok {
		findings = append(findings, models.Finding{
			Category:    models.CategoryPlatformCredibility,
			Severity:    55,
			Description: "Platform lacks employer verification processes",
			Confidence:  0.6,
		})
	}

	// "found it on a website" tells us nothing.
	if len(strings.Fields(original)) <= 2 {
		for _, w := range a.vagueWords {
			if strings.Contains(original, w) {
				findings = append(findings, models.Finding{
					Category:    models.CategoryPlatformCredibility,
					Severity:    45,
					Description: "Platform description is vague or non-specific",
					Confidence:  0.6,
				})
				break
			}
		}
	}
	return findings
}

func (a *PlatformAnalyzer) confidence(normalized string, findingCount int) float64 {
	c := 0.8
	if _, ok := a.credibility[normalized]; ok {
		c += 0.1
	}
	if findingCount > 0 {
		c += math.Min(0.1, float64(findingCount)*0.02)
	}
	for _, n := range a.normalizers {
		if n.re.MatchString(normalized) {
			c += 0.05
			break
		}
	}
	return math.Min(1.0, c)
}
