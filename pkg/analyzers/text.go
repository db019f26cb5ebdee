package analyzers

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// keywordFamily groups fraud keywords that share a severity. All keywords
// in the text are counted (all-matches policy): severity scales with the
// number of distinct keywords hit.
type keywordFamily struct {
	label      string
	keywords   []string
	severity   int
	confidence float64
}

// textPattern is a regex-based fraud signal. All matches are counted and
// severity scales with the match count.
type textPattern struct {
	re          *regexp.Regexp
	severity    int
	confidence  float64
	describe    string // format string taking the match count
}

// TextAnalyzer scans job description text for fraud keywords, suspicious
// patterns, and content quality problems. It carries the dominant weight
// in the aggregation, so its rule tables are the largest.
type TextAnalyzer struct {
	families []keywordFamily
	patterns []textPattern

	requirementKeywords []string
}

// NewTextAnalyzer builds the analyzer with its static rule tables.
// The returned value is read-only after construction.
func NewTextAnalyzer() *TextAnalyzer {
	return &TextAnalyzer{
		families: []keywordFamily{
			{
				label: "personal info requests",
				keywords: []string{
					"ssn", "social security", "bank account", "routing number",
					"credit card", "personal information", "id copy", "passport copy",
					"driver license", "birth certificate", "tax information",
				},
				severity:   100,
				confidence: 0.9,
			},
			{
				label: "financial requests",
				keywords: []string{
					"processing fee", "training fee", "equipment fee", "startup cost",
					"registration fee", "background check fee", "send money",
					"wire transfer", "western union", "moneygram", "cash advance",
					"money transfer", "transfer funds", "transfer money",
				},
				severity:   98,
				confidence: 0.9,
			},
			{
				label: "urgency pressure",
				keywords: []string{
					"immediate start", "urgent hiring", "start immediately", "asap",
					"quick hire", "fast hiring", "limited time", "act now",
					"don't wait", "hurry", "expires soon", "today only",
				},
				severity:   65,
				confidence: 0.8,
			},
			{
				label: "unrealistic promises",
				keywords: []string{
					"no experience required", "guaranteed income", "easy money",
					"work from home guaranteed", "make money fast", "get rich quick",
					"high pay no experience", "earn thousands weekly", "instant success",
				},
				severity:   75,
				confidence: 0.8,
			},
			{
				label: "vague descriptions",
				keywords: []string{
					"various duties", "other duties as assigned", "miscellaneous tasks",
					"general office work", "data entry", "customer service representative",
					"administrative assistant", "personal assistant",
				},
				severity:   30,
				confidence: 0.8,
			},
			{
				label: "communication red flags",
				keywords: []string{
					"whatsapp", "telegram", "text message", "sms only",
					"contact via text", "message me", "call this number",
					"email me directly", "respond asap",
				},
				severity:   55,
				confidence: 0.8,
			},
		},
		patterns: []textPattern{
			{
				re:         regexp.MustCompile(`[A-Z]{5,}`),
				severity:   15,
				confidence: 0.7,
				describe:   "Excessive use of capital letters (%d instances)",
			},
			{
				re:         regexp.MustCompile(`!{2,}`),
				severity:   20,
				confidence: 0.7,
				describe:   "Multiple exclamation marks (%d instances)",
			},
			{
				re:         regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
				severity:   40,
				confidence: 0.7,
				describe:   "Phone numbers in job description (%d found)",
			},
			{
				re:         regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
				severity:   35,
				confidence: 0.7,
				describe:   "Email addresses in job description (%d found)",
			},
			{
				re:         regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d{2})?`),
				severity:   15, // salary ranges are normal
				confidence: 0.7,
				describe:   "Specific dollar amounts mentioned (%d instances)",
			},
			{
				re:         regexp.MustCompile(`(?i)\$(?:[5-9]\d{3,}|\d{5,})(?:/week|/day|weekly|daily)`),
				severity:   90,
				confidence: 0.9,
				describe:   "Unrealistic salary promises detected (%d instances)",
			},
			{
				re:         regexp.MustCompile(`(?i)\b(?:there|their|they're)\b.*\b(?:there|their|they're)\b`),
				severity:   20,
				confidence: 0.7,
				describe:   "Potential grammar issues detected (%d instances)",
			},
			{
				re:         regexp.MustCompile(`[$£€¥₹]`),
				severity:   30,
				confidence: 0.7,
				describe:   "Multiple currency symbols used (%d instances)",
			},
			{
				re:         regexp.MustCompile(`(?i)\b(?:instant|immediate|now|today|asap)\b`),
				severity:   45,
				confidence: 0.7,
				describe:   "Urgency/instant keywords detected (%d instances)",
			},
		},
		requirementKeywords: []string{
			"experience", "skill", "requirement", "qualification", "must have", "should have",
		},
	}
}

func (a *TextAnalyzer) Name() string { return "TextAnalyzer" }

func (a *TextAnalyzer) Category() models.Category { return models.CategoryTextAnalysis }

// Analyze scans the job text. Missing text is a hard failure signal, not a
// neutral input: the description is the one field an assessment cannot do
// without.
func (a *TextAnalyzer) Analyze(jobText string) models.CategoryResult {
	if strings.TrimSpace(jobText) == "" {
		return models.CategoryResult{
			Findings: []models.Finding{{
				Category:    models.CategoryTextAnalysis,
				Severity:    100,
				Description: "Job text is empty or missing",
				Confidence:  1.0,
			}},
			Confidence:   1.0,
			AnalyzerName: a.Name(),
		}
	}

	lower := strings.ToLower(jobText)
	var findings []models.Finding

	findings = a.checkKeywordFamilies(lower, findings)
	findings = a.checkPatterns(jobText, findings)
	findings = a.checkContentQuality(jobText, lower, findings)

	return models.CategoryResult{
		Findings:     findings,
		Confidence:   a.confidence(jobText, len(findings)),
		AnalyzerName: a.Name(),
	}
}

func (a *TextAnalyzer) checkKeywordFamilies(lower string, findings []models.Finding) []models.Finding {
	for _, fam := range a.families {
		var matches []string
		for _, kw := range fam.keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, kw)
			}
		}
		if len(matches) == 0 {
			continue
		}

		// Multiple hits in the same family push severity up.
		severity := min(100, fam.severity+(len(matches)-1)*5)
		shown := matches
		if len(shown) > 3 {
			shown = shown[:3]
		}
		findings = append(findings, models.Finding{
			Category:    models.CategoryTextAnalysis,
			Severity:    severity,
			Description: fmt.Sprintf("Contains %s keywords: %s", fam.label, strings.Join(shown, ", ")),
			Confidence:  fam.confidence,
		})
	}
	return findings
}

func (a *TextAnalyzer) checkPatterns(jobText string, findings []models.Finding) []models.Finding {
	for _, p := range a.patterns {
		count := len(p.re.FindAllString(jobText, -1))
		if count == 0 {
			continue
		}
		severity := min(100, p.severity+(count-1)*10)
		findings = append(findings, models.Finding{
			Category:    models.CategoryTextAnalysis,
			Severity:    severity,
			Description: fmt.Sprintf(p.describe, count),
			Confidence:  p.confidence,
		})
	}
	return findings
}

func (a *TextAnalyzer) checkContentQuality(jobText, lower string, findings []models.Finding) []models.Finding {
	words := len(strings.Fields(jobText))

	if words < 20 {
		findings = append(findings, models.Finding{
			Category:    models.CategoryTextAnalysis,
			Severity:    70,
			Description: fmt.Sprintf("Very short job description (%d words)", words),
			Confidence:  0.9,
		})
	} else if words > 1000 {
		findings = append(findings, models.Finding{
			Category:    models.CategoryTextAnalysis,
			Severity:    40,
			Description: fmt.Sprintf("Unusually long job description (%d words)", words),
			Confidence:  0.6,
		})
	}

	hasRequirements := false
	for _, kw := range a.requirementKeywords {
		if strings.Contains(lower, kw) {
			hasRequirements = true
			break
		}
	}
	if !hasRequirements {
		findings = append(findings, models.Finding{
			Category:    models.CategoryTextAnalysis,
			Severity:    50,
			Description: "No specific requirements or qualifications mentioned",
			Confidence:  0.7,
		})
	}
	return findings
}

// confidence grows with the amount of text available and the amount of
// analysis that actually fired.
func (a *TextAnalyzer) confidence(jobText string, findingCount int) float64 {
	c := 0.7
	words := len(strings.Fields(jobText))
	if words > 50 {
		c += 0.1
	}
	if words > 100 {
		c += 0.1
	}
	if findingCount > 0 {
		c += math.Min(0.2, float64(findingCount)*0.05)
	}
	return math.Min(1.0, c)
}
