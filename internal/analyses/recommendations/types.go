package recommendations

import "resume-analytics/internal/scoring"

// Recommendation represents a deterministic suggestion derived from analysis results.
type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Why      string `json:"why"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
	Order    int    `json:"order"`
}

// Input is the scored data needed for recommendation generation.
type Input struct {
	MissingRequired  []string
	MissingPreferred []string
	Findings         []scoring.Finding
	WordCount        int
	MinWords         int
	SkillMatchScore  float64
}

// InputFor splits the missing skills of result by the profile they were
// scored against.
func InputFor(result scoring.AnalysisResult, profile scoring.RequirementProfile) Input {
	in := Input{
		Findings:        result.ATSFindings,
		WordCount:       result.WordCount,
		MinWords:        profile.MinWords,
		SkillMatchScore: result.SkillMatchScore,
	}
	for _, skill := range result.MissingSkills {
		if profile.RequiredSkills.Has(skill) {
			in.MissingRequired = append(in.MissingRequired, skill)
		} else {
			in.MissingPreferred = append(in.MissingPreferred, skill)
		}
	}
	return in
}
