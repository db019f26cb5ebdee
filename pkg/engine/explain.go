package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// Flags are capped so a pathological posting with dozens of findings
// doesn't bury the reader.
const maxFlags = 8

// pooledFindings flattens all analyzer findings into one slice ordered by
// confidence-weighted severity, highest first. Pooling order across
// categories is fixed so equal-weight findings sort deterministically.
func pooledFindings(results map[models.Category]models.CategoryResult) []models.Finding {
	var all []models.Finding
	for _, category := range models.Categories {
		if res, ok := results[category]; ok {
			all = append(all, res.Findings...)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Weight() > all[j].Weight()
	})
	return all
}

// renderFlags produces the user-facing flag list: top findings by weight,
// exact-duplicate descriptions removed.
func renderFlags(results map[models.Category]models.CategoryResult) []string {
	flags := make([]string, 0, maxFlags)
	seen := make(map[string]struct{})
	for _, f := range pooledFindings(results) {
		if _, ok := seen[f.Description]; ok {
			continue
		}
		flags = append(flags, f.Description)
		seen[f.Description] = struct{}{}
		if len(flags) >= maxFlags {
			break
		}
	}
	return flags
}

// renderExplanation builds the prose summary: a verdict-keyed opening
// with the score, the top concerns, per-category insights, and a closing
// recommendation.
func renderExplanation(results map[models.Category]models.CategoryResult, score int, verdict models.Verdict, confidence models.ConfidenceLevel) string {
	var parts []string

	switch verdict {
	case models.VerdictSafe:
		parts = append(parts, fmt.Sprintf(
			"This job posting appears legitimate with a low risk score of %d (%s confidence).",
			score, strings.ToLower(string(confidence))))
	case models.VerdictCaution:
		parts = append(parts, fmt.Sprintf(
			"This job posting shows some concerning signs with a moderate risk score of %d (%s confidence).",
			score, strings.ToLower(string(confidence))))
	default:
		parts = append(parts, fmt.Sprintf(
			"This job posting has significant red flags with a high risk score of %d (%s confidence).",
			score, strings.ToLower(string(confidence))))
	}

	pooled := pooledFindings(results)
	if len(pooled) > 0 {
		top := pooled
		if len(top) > 3 {
			top = top[:3]
		}
		concerns := make([]string, len(top))
		for i, f := range top {
			concerns[i] = strings.ToLower(f.Description)
		}
		switch len(concerns) {
		case 1:
			parts = append(parts, fmt.Sprintf("The main concern is: %s.", concerns[0]))
		case 2:
			parts = append(parts, fmt.Sprintf("Key concerns include: %s and %s.", concerns[0], concerns[1]))
		default:
			parts = append(parts, fmt.Sprintf("Key concerns include: %s, and %s.",
				strings.Join(concerns[:len(concerns)-1], ", "), concerns[len(concerns)-1]))
		}
	}

	if insight := categoryInsights(results); insight != "" {
		parts = append(parts, insight)
	}

	switch verdict {
	case models.VerdictSafe:
		parts = append(parts, "The job posting meets standard legitimacy criteria, but always verify details independently.")
	case models.VerdictCaution:
		parts = append(parts, "Exercise caution and verify company details before proceeding with any application.")
	default:
		parts = append(parts, "Strong recommendation to avoid this opportunity and report if encountered on job platforms.")
	}

	return strings.Join(parts, " ")
}

var insightPhrases = []struct {
	category models.Category
	phrase   string
}{
	{models.CategoryTextAnalysis, "the job description contains suspicious elements"},
	{models.CategoryEmailValidation, "the recruiter email raises credibility concerns"},
	{models.CategoryURLValidation, "the company URL appears questionable"},
	{models.CategoryPlatformCredibility, "the platform source has credibility issues"},
}

// categoryInsights names each category that produced at least one finding
// of severity 60 or higher.
func categoryInsights(results map[models.Category]models.CategoryResult) string {
	var insights []string
	for _, ip := range insightPhrases {
		if anySeverityAtLeast(results[ip.category].Findings, 60) {
			insights = append(insights, ip.phrase)
		}
	}

	switch len(insights) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Specifically, %s.", insights[0])
	case 2:
		return fmt.Sprintf("Specifically, %s and %s.", insights[0], insights[1])
	default:
		return fmt.Sprintf("Specifically, %s, and %s.",
			strings.Join(insights[:len(insights)-1], ", "), insights[len(insights)-1])
	}
}
