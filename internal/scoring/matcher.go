package scoring

const (
	requiredShare  = 0.7
	preferredShare = 0.3
)

// SkillMatch is the outcome of comparing extracted skills with a profile.
type SkillMatch struct {
	Score          float64
	RequiredRatio  float64
	PreferredRatio float64
	FoundRequired  SkillSet
	FoundPreferred SkillSet
}

// MatchSkills scores how many of the profile's required and preferred skills
// were found. Required skills weigh 0.7 and preferred 0.3; an empty
// requirement list contributes a ratio of 0.
func MatchSkills(extracted ExtractedSkills, profile RequirementProfile) SkillMatch {
	found := extracted.Flatten()
	m := SkillMatch{
		FoundRequired:  found.Intersect(profile.RequiredSkills),
		FoundPreferred: found.Intersect(profile.PreferredSkills),
	}
	m.RequiredRatio = ratio(m.FoundRequired.Len(), profile.RequiredSkills.Len())
	m.PreferredRatio = ratio(m.FoundPreferred.Len(), profile.PreferredSkills.Len())
	m.Score = clampScore(100 * (requiredShare*m.RequiredRatio + preferredShare*m.PreferredRatio))
	return m
}

// MissingSkills returns (required ∪ preferred) minus every extracted skill.
func MissingSkills(extracted ExtractedSkills, profile RequirementProfile) SkillSet {
	return profile.AllSkills().Minus(extracted.Flatten())
}

func ratio(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func clampScore(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
