package scoring

import (
	"fmt"
	"strings"
)

// FitLevel is the categorical label for a job-description match percentage.
type FitLevel string

const (
	FitExcellent FitLevel = "Excellent Match"
	FitGood      FitLevel = "Good Match"
	FitModerate  FitLevel = "Moderate Match"
	FitPoor      FitLevel = "Poor Match"

	maxRecommendedSkills = 5
)

// FitLevelFor maps a percentage to its band; lower bounds are inclusive.
func FitLevelFor(pct float64) FitLevel {
	switch {
	case pct >= 80:
		return FitExcellent
	case pct >= 60:
		return FitGood
	case pct >= 40:
		return FitModerate
	default:
		return FitPoor
	}
}

// CategoryMatch is the per-category breakdown of a job match.
type CategoryMatch struct {
	Matched       []string `json:"matched"`
	Missing       []string `json:"missing"`
	MatchCount    int      `json:"matchCount"`
	RequiredCount int      `json:"requiredCount"`
}

// JobMatchResult compares a resume with a free-text job description.
type JobMatchResult struct {
	JobTitle        string        `json:"jobTitle"`
	MatchPercentage float64       `json:"matchPercentage"`
	FitLevel        FitLevel      `json:"fitLevel"`
	TechnicalSkills CategoryMatch `json:"technicalSkills"`
	BusinessSkills  CategoryMatch `json:"businessSkills"`
	Recommendation  string        `json:"recommendation"`
}

// MatchJobDescription measures how much of a job description's technical
// and business vocabulary the resume covers. Soft skills are left out:
// job descriptions rarely list them as keywords.
func MatchJobDescription(resumeSkills, jdSkills ExtractedSkills, jobTitle string) JobMatchResult {
	tech := matchCategory(resumeSkills.Get(CategoryTechnical), jdSkills.Get(CategoryTechnical))
	business := matchCategory(resumeSkills.Get(CategoryBusiness), jdSkills.Get(CategoryBusiness))

	matched := tech.MatchCount + business.MatchCount
	required := tech.RequiredCount + business.RequiredCount
	pct := 0.0
	if required > 0 {
		pct = 100 * float64(matched) / float64(required)
	}

	return JobMatchResult{
		JobTitle:        jobTitle,
		MatchPercentage: pct,
		FitLevel:        FitLevelFor(pct),
		TechnicalSkills: tech,
		BusinessSkills:  business,
		Recommendation:  recommendation(pct, tech.Missing),
	}
}

func matchCategory(resume, jd SkillSet) CategoryMatch {
	matched := resume.Intersect(jd)
	return CategoryMatch{
		Matched:       matched.Sorted(),
		Missing:       jd.Minus(resume).Sorted(),
		MatchCount:    matched.Len(),
		RequiredCount: jd.Len(),
	}
}

func recommendation(pct float64, missingTech []string) string {
	focus := "none"
	if len(missingTech) > 0 {
		n := len(missingTech)
		if n > maxRecommendedSkills {
			n = maxRecommendedSkills
		}
		focus = strings.Join(missingTech[:n], ", ")
	}
	return fmt.Sprintf("You match %.0f%% of the job requirements. Focus on acquiring: %s", pct, focus)
}
