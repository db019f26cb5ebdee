package engine

import "strings"

// Maximum offset a polished posting can earn. Keeps professionalism from
// masking a genuinely fraudulent posting that also happens to be well
// written.
const maxProfessionalismBonus = 25.0

// Section headers of a structured posting. Matched as lowercase
// substrings, trailing colon included so prose mentions don't count.
var structureIndicators = []string{
	"responsibilities:", "requirements:", "qualifications:",
	"about the role:", "job description:", "duties include:",
	"we are looking for:", "the ideal candidate:", "about us:",
	"what you'll do:", "what we offer:", "benefits:", "perks:",
	"key responsibilities:", "required skills:", "preferred qualifications:",
}

var professionalTerms = []string{
	"bachelor's degree", "master's degree", "years of experience",
	"proven track record", "strong communication skills", "team player",
	"competitive salary", "benefits package", "equal opportunity employer",
	"professional development", "career growth", "health insurance",
	"401k", "pto", "paid time off", "work-life balance", "remote work",
	"hybrid work", "flexible schedule", "mentorship", "training",
}

// Concrete technology names. Scam postings stay vague about the actual
// work; naming specific tools is a legitimacy signal.
var technicalSkills = []string{
	"python", "java", "javascript", "sql", "aws", "docker", "kubernetes",
	"react", "angular", "node.js", "git", "agile", "scrum", "devops",
	"machine learning", "data analysis", "project management", "html",
	"css", "typescript", "mongodb", "postgresql", "redis", "api",
	"microservices", "ci/cd", "jenkins", "terraform", "ansible",
}

// professionalismBonus scores the structural and linguistic polish of the
// posting text, returning points to subtract from the blended risk score.
func professionalismBonus(jobText string) float64 {
	if strings.TrimSpace(jobText) == "" {
		return 0
	}

	bonus := 0.0
	lower := strings.ToLower(jobText)

	switch count := countContains(lower, structureIndicators); {
	case count >= 3:
		bonus += 10
	case count >= 2:
		bonus += 7
	case count >= 1:
		bonus += 4
	}

	switch count := countContains(lower, professionalTerms); {
	case count >= 5:
		bonus += 8
	case count >= 3:
		bonus += 5
	case count >= 1:
		bonus += 2
	}

	switch count := countContains(lower, technicalSkills); {
	case count >= 4:
		bonus += 7
	case count >= 2:
		bonus += 4
	case count >= 1:
		bonus += 2
	}

	switch words := len(strings.Fields(jobText)); {
	case words >= 200:
		bonus += 5
	case words >= 100:
		bonus += 3
	case words >= 50:
		bonus += 1
	}

	if bonus > maxProfessionalismBonus {
		return maxProfessionalismBonus
	}
	return bonus
}

func countContains(haystack string, needles []string) int {
	count := 0
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			count++
		}
	}
	return count
}
