package recommendations

import (
	"fmt"
	"sort"
	"strings"

	"resume-analytics/internal/scoring"
)

const maxListedSkills = 10

func fromMissingRequired(skills []string, skillMatch float64) []Recommendation {
	items := uniqueSortedStrings(skills)
	if len(items) == 0 {
		return nil
	}
	severity := "warning"
	if skillMatch < 50 {
		severity = "critical"
	}
	return []Recommendation{{
		ID:       "SKILLS_MISSING_REQUIRED",
		Category: "SKILLS",
		Severity: severity,
		Title:    "Cover the required skills",
		Why:      "Required skills carry 70% of the skill match score.",
		Action:   "Show concrete experience with: " + joinLimited(items, maxListedSkills),
		Impact:   "high",
	}}
}

func fromMissingPreferred(skills []string) []Recommendation {
	items := uniqueSortedStrings(skills)
	if len(items) == 0 {
		return nil
	}
	return []Recommendation{{
		ID:       "SKILLS_MISSING_PREFERRED",
		Category: "SKILLS",
		Severity: "info",
		Title:    "Add preferred skills you have",
		Why:      "Preferred skills lift the match score and set you apart from other applicants.",
		Action:   "Mention any of these you have used: " + joinLimited(items, maxListedSkills),
		Impact:   "medium",
	}}
}

func fromFindings(findings []scoring.Finding) []Recommendation {
	out := make([]Recommendation, 0, len(findings))
	for _, f := range findings {
		switch f.Code {
		case "unsupported_extension":
			out = append(out, Recommendation{
				ID:       "ATS_FILE_TYPE",
				Category: "ATS",
				Severity: "critical",
				Title:    "Submit a PDF or DOCX file",
				Why:      "Tracking systems reliably parse only standard document formats.",
				Action:   "Export the resume as PDF or DOCX.",
				Impact:   "high",
			})
		case "missing_contact":
			out = append(out, Recommendation{
				ID:       "STRUCTURE_CONTACT",
				Category: "STRUCTURE",
				Severity: "critical",
				Title:    "Add contact details",
				Why:      "Recruiters cannot reach you without an email and phone number.",
				Action:   "Put your email address and phone number in the header.",
				Impact:   "high",
			})
		case "too_short":
			out = append(out, Recommendation{
				ID:       "STRUCTURE_TOO_SHORT",
				Category: "STRUCTURE",
				Severity: "warning",
				Title:    "Add more content",
				Why:      "Very short resumes give tracking systems little to match against.",
				Action:   "Describe your roles, projects and results in full sentences.",
				Impact:   "high",
			})
		case "sections_missing":
			out = append(out, Recommendation{
				ID:       "STRUCTURE_SECTIONS",
				Category: "STRUCTURE",
				Severity: "warning",
				Title:    "Use standard section headings",
				Why:      "Standard headings help tracking systems split the resume correctly.",
				Action:   f.Message,
				Impact:   "medium",
			})
		case "banned_marker":
			out = append(out, Recommendation{
				ID:       "FORMATTING_" + slugify(f.Message),
				Category: "FORMATTING",
				Severity: "warning",
				Title:    "Remove content tracking systems cannot read",
				Why:      "Tables, images and graphics are often dropped during parsing.",
				Action:   f.Message + ".",
				Impact:   "medium",
			})
		}
	}
	return out
}

func fromLength(wordCount, minWords int) []Recommendation {
	if minWords <= 0 || wordCount >= minWords {
		return nil
	}
	return []Recommendation{{
		ID:       "STRUCTURE_LENGTH",
		Category: "STRUCTURE",
		Severity: "info",
		Title:    "Expand your resume",
		Why:      "Length below the level's expectation lowers the overall score.",
		Action:   fmt.Sprintf("Aim for at least %d words; you have %d.", minWords, wordCount),
		Impact:   "medium",
	}}
}

func joinLimited(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:limit], ", ") + fmt.Sprintf(" and %d more", len(items)-limit)
}

func uniqueSortedStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	sort.Strings(out)
	return out
}
