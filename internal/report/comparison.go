package report

import (
	"fmt"
	"strings"
	"time"

	"resume-analytics/internal/scoring"
)

const (
	maxNameInTable   = 30
	maxNameInLabel   = 20
	maxCompareListed = 15
)

// ComparisonSide is one resume in a comparison report.
type ComparisonSide struct {
	FileName string
	Result   scoring.AnalysisResult
}

// ComparisonInput is everything printed in a comparison report.
type ComparisonInput struct {
	First       ComparisonSide
	Second      ComparisonSide
	Comparison  scoring.ComparisonResult
	GeneratedAt time.Time
}

// ComparisonFileName is the download name of a comparison report.
func ComparisonFileName(t time.Time) string {
	return "Resume_Comparison_" + t.Format("20060102") + ".docx"
}

// RenderComparison renders a side-by-side comparison as a DOCX document.
func RenderComparison(in ComparisonInput) ([]byte, error) {
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = time.Now()
	}
	nameA := truncate(in.First.FileName, maxNameInTable)
	nameB := truncate(in.Second.FileName, maxNameInTable)
	a, b := in.First.Result, in.Second.Result

	doc := NewDocument()
	doc.Centered(Run{Text: "Resume Comparison Report", Style: "title"})
	doc.Spacer()

	doc.Heading("Score Comparison")
	doc.Table([][]string{
		{"Metric", nameA, nameB},
		{"Overall Score", fmt.Sprintf("%.1f", a.OverallScore), fmt.Sprintf("%.1f", b.OverallScore)},
		{"Skill Match", fmt.Sprintf("%.1f%%", a.SkillMatchScore), fmt.Sprintf("%.1f%%", b.SkillMatchScore)},
		{"ATS Score", fmt.Sprintf("%.1f%%", a.ATSScore), fmt.Sprintf("%.1f%%", b.ATSScore)},
		{"Word Count", fmt.Sprint(a.WordCount), fmt.Sprint(b.WordCount)},
	}, true)
	doc.Spacer()

	doc.Heading("Technical Skills Comparison")
	cmp := in.Comparison
	skillLine(doc, fmt.Sprintf("Shared Skills (%d): ", len(cmp.SharedTechnicalSkills)), cmp.SharedTechnicalSkills)
	skillLine(doc, fmt.Sprintf("Unique to %s (%d): ", truncate(in.First.FileName, maxNameInLabel), len(cmp.UniqueToFirst)), cmp.UniqueToFirst)
	skillLine(doc, fmt.Sprintf("Unique to %s (%d): ", truncate(in.Second.FileName, maxNameInLabel), len(cmp.UniqueToSecond)), cmp.UniqueToSecond)
	doc.Spacer()

	doc.Heading("Summary")
	better := in.Second.FileName
	if cmp.BetterOverallScore == scoring.VerdictFirst {
		better = in.First.FileName
	}
	doc.Paragraph(Run{Text: "Stronger overall: ", Style: "strong"}, Run{Text: better, Style: "body"})
	doc.Spacer()
	doc.Paragraph(Run{Text: footerBrand + " | Generated on " + in.GeneratedAt.Format("January 02, 2006"), Style: "footer"})

	return doc.Bytes(in.GeneratedAt)
}

func skillLine(doc *Document, label string, items []string) {
	if len(items) == 0 {
		return
	}
	doc.Paragraph(
		Run{Text: label, Style: "strong"},
		Run{Text: strings.Join(limit(items, maxCompareListed), ", "), Style: "body"},
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
