package scoring

import "math"

// LengthScore gives full credit at or above minWords and linear partial
// credit below it.
func LengthScore(wordCount, minWords int) float64 {
	if minWords <= 0 || wordCount >= minWords {
		return 100
	}
	if wordCount <= 0 {
		return 0
	}
	return clampScore(100 * float64(wordCount) / float64(minWords))
}

// ComposeScore blends the skill-match, format and length scores using the
// profile weights.
func ComposeScore(skillMatch, ats float64, wordCount int, profile RequirementProfile) float64 {
	length := LengthScore(wordCount, profile.MinWords)
	overall := skillMatch*profile.TechnicalWeight +
		ats*profile.BusinessWeight +
		length*profile.SoftWeight
	return clampScore(overall)
}

// Round2 rounds to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
