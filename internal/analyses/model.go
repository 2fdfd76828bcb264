package analyses

import (
	"time"

	"resume-analytics/internal/scoring"
)

// Skill categories of found-skill rows.
const (
	SkillRequired  = "required"
	SkillPreferred = "preferred"

	ProficiencyFound = "found"
)

// Analysis is a persisted scoring of one resume against one role and level.
type Analysis struct {
	ID              string
	UserID          string
	ResumeID        string
	FileName        string
	Role            string
	Level           string
	OverallScore    float64
	SkillMatchScore float64
	ATSScore        float64
	LengthScore     float64
	WordCount       int
	ExtractedSkills scoring.ExtractedSkills
	MissingSkills   []string
	ATSFindings     []scoring.Finding
	Skills          []SkillRow
	CreatedAt       time.Time
}

// SkillRow records one required or preferred skill found in the resume.
type SkillRow struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
}

// Result rebuilds the scoring view of a stored analysis.
func (a Analysis) Result() scoring.AnalysisResult {
	res := scoring.AnalysisResult{
		Role:               a.Role,
		Level:              a.Level,
		OverallScore:       a.OverallScore,
		SkillMatchScore:    a.SkillMatchScore,
		ATSScore:           a.ATSScore,
		LengthScore:        a.LengthScore,
		MissingSkills:      a.MissingSkills,
		WordCount:          a.WordCount,
		AllExtractedSkills: a.ExtractedSkills,
		ATSFindings:        a.ATSFindings,
	}
	for _, s := range a.Skills {
		switch s.Category {
		case SkillRequired:
			res.FoundRequired = append(res.FoundRequired, s.Name)
		case SkillPreferred:
			res.FoundPreferred = append(res.FoundPreferred, s.Name)
		}
	}
	return res
}

func skillRows(result scoring.AnalysisResult) []SkillRow {
	rows := make([]SkillRow, 0, len(result.FoundRequired)+len(result.FoundPreferred))
	for _, name := range result.FoundRequired {
		rows = append(rows, SkillRow{Name: name, Category: SkillRequired, Proficiency: ProficiencyFound})
	}
	for _, name := range result.FoundPreferred {
		rows = append(rows, SkillRow{Name: name, Category: SkillPreferred, Proficiency: ProficiencyFound})
	}
	return rows
}
