package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-analytics/internal/scoring"
)

const (
	passMark           = 70
	maxTechnicalListed = 20
	maxBusinessListed  = 15
	maxSoftListed      = 15
	maxMissingListed   = 25
	footerBrand        = "Resume Analytics Platform"
	ContentType        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AnalysisInput is everything printed in a single-resume report.
type AnalysisInput struct {
	AnalysisID      string
	FileName        string
	GeneratedAt     time.Time
	Role            string
	Level           string
	OverallScore    float64
	SkillMatchScore float64
	ATSScore        float64
	WordCount       int
	Extracted       scoring.ExtractedSkills
	Missing         []string
	// Suggestions are extra improvement lines appended after the score summary.
	Suggestions []string
}

// AnalysisFileName is the download name of a report generated at t.
func AnalysisFileName(analysisID string, t time.Time) string {
	return fmt.Sprintf("Resume_Analysis_%s_%s.docx", analysisID, t.Format("20060102"))
}

// DisplayName turns a catalog key such as "data_analyst" into "Data Analyst".
func DisplayName(key string) string {
	if strings.TrimSpace(key) == "" {
		return "N/A"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// RenderAnalysis renders a single analysis as a DOCX document.
func RenderAnalysis(in AnalysisInput) ([]byte, error) {
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = time.Now()
	}
	doc := NewDocument()
	doc.Centered(Run{Text: "Resume Analysis Report", Style: "title"})
	doc.Spacer()

	doc.Table([][]string{
		{"File Name:", in.FileName},
		{"Generated:", in.GeneratedAt.Format("January 02, 2006 at 03:04 PM")},
		{"Role:", DisplayName(in.Role)},
		{"Level:", DisplayName(in.Level)},
	}, false)
	doc.Spacer()

	doc.Heading("Overall Scores")
	doc.Table([][]string{
		{"Metric", "Score", "Status"},
		{"Overall Score", fmt.Sprintf("%.1f/100", in.OverallScore), mark(in.OverallScore)},
		{"Skill Match", fmt.Sprintf("%.1f%%", in.SkillMatchScore), mark(in.SkillMatchScore)},
		{"ATS Score", fmt.Sprintf("%.1f%%", in.ATSScore), mark(in.ATSScore)},
	}, true)
	doc.Spacer()

	doc.Heading("Skill Analysis")
	if in.Extracted != nil && in.Extracted.Total() > 0 {
		doc.Paragraph(Run{Text: "Found Skills:", Style: "strong"})
		labelled(doc, "Technical: ", in.Extracted.Get(scoring.CategoryTechnical).Sorted(), maxTechnicalListed)
		labelled(doc, "Business: ", in.Extracted.Get(scoring.CategoryBusiness).Sorted(), maxBusinessListed)
		labelled(doc, "Soft Skills: ", in.Extracted.Get(scoring.CategorySoft).Sorted(), maxSoftListed)
		doc.Spacer()
	}
	if len(in.Missing) > 0 {
		doc.Paragraph(Run{Text: "Missing Skills (Recommended to Learn):", Style: "strong"})
		doc.Paragraph(Run{Text: strings.Join(limit(in.Missing, maxMissingListed), ", "), Style: "body"})
		doc.Spacer()
	}

	doc.Heading("Recommendations for Improvement")
	for _, line := range summaryLines(in) {
		doc.Paragraph(Run{Text: "• " + line, Style: "body"})
	}
	for _, line := range in.Suggestions {
		doc.Paragraph(Run{Text: "• " + line, Style: "body"})
	}
	doc.Spacer()
	doc.Paragraph(Run{Text: footerBrand + " | Generated on " + in.GeneratedAt.Format("January 02, 2006"), Style: "footer"})

	return doc.Bytes(in.GeneratedAt)
}

func summaryLines(in AnalysisInput) []string {
	var out []string
	if in.SkillMatchScore < passMark {
		out = append(out, fmt.Sprintf("Focus on acquiring missing technical skills (currently %.0f%% match)", in.SkillMatchScore))
	}
	if in.ATSScore < passMark {
		out = append(out, fmt.Sprintf("Improve resume format and structure for ATS compatibility (score: %.0f%%)", in.ATSScore))
	}
	switch {
	case in.OverallScore < 50:
		out = append(out, "This role may not be the best fit. Consider exploring other positions.")
	case in.OverallScore < passMark:
		out = append(out, "You are close! Focus on the recommendations above to reach 70%+ match.")
	default:
		out = append(out, "Excellent! You meet most requirements for this position.")
	}
	if len(in.Missing) > 0 {
		out = append(out, fmt.Sprintf("Consider learning %d additional skills to strengthen your profile", len(in.Missing)))
	}
	return out
}

func labelled(doc *Document, label string, items []string, max int) {
	if len(items) == 0 {
		return
	}
	doc.Paragraph(
		Run{Text: label, Style: "strong"},
		Run{Text: strings.Join(limit(items, max), ", "), Style: "body"},
	)
}

func mark(score float64) string {
	if score >= passMark {
		return "✓"
	}
	return "✗"
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
