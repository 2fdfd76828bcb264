package scoring

// Verdict names the better of two compared resumes.
type Verdict string

const (
	VerdictFirst  Verdict = "resume1"
	VerdictSecond Verdict = "resume2"
)

// ComparisonResult contrasts two analyses scored against the same profile.
type ComparisonResult struct {
	SharedTechnicalSkills []string `json:"sharedTechnicalSkills"`
	UniqueToFirst         []string `json:"uniqueToResume1"`
	UniqueToSecond        []string `json:"uniqueToResume2"`
	SharedSkillCount      int      `json:"sharedSkillCount"`
	BetterOverallScore    Verdict  `json:"betterOverallScore"`
	BetterSkillMatch      Verdict  `json:"betterSkillMatch"`
	BetterATSScore        Verdict  `json:"betterAtsScore"`
}

// Compare contrasts two analyses. Each verdict uses strict greater-than, so
// equal scores resolve to the second resume.
func Compare(a AnalysisResult, techA SkillSet, b AnalysisResult, techB SkillSet) ComparisonResult {
	shared := techA.Intersect(techB)
	return ComparisonResult{
		SharedTechnicalSkills: shared.Sorted(),
		UniqueToFirst:         techA.Minus(techB).Sorted(),
		UniqueToSecond:        techB.Minus(techA).Sorted(),
		SharedSkillCount:      shared.Len(),
		BetterOverallScore:    better(a.OverallScore, b.OverallScore),
		BetterSkillMatch:      better(a.SkillMatchScore, b.SkillMatchScore),
		BetterATSScore:        better(a.ATSScore, b.ATSScore),
	}
}

func better(first, second float64) Verdict {
	if first > second {
		return VerdictFirst
	}
	return VerdictSecond
}
