package analyses

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"resume-analytics/internal/scoring"
)

// ScoreExplanation explains how the overall score is calculated.
type ScoreExplanation struct {
	OverallScore float64          `json:"overallScore"`
	Components   []ScoreComponent `json:"components"`
}

// ScoreComponent represents a weighted score component.
type ScoreComponent struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Score        float64  `json:"score"`
	Weight       float64  `json:"weight"`
	Contribution float64  `json:"contribution"`
	Explanation  string   `json:"explanation"`
	Helped       []string `json:"helped"`
	Dragged      []string `json:"dragged"`
}

var scoreComponentKeys = map[string]string{
	"skillMatch":     "Skill Match",
	"atsReadability": "ATS Readability",
	"length":         "Length",
}

// Explain breaks result into its weighted components using the profile it
// was scored against.
func Explain(result scoring.AnalysisResult, profile scoring.RequirementProfile) ScoreExplanation {
	skill := ScoreComponent{
		Key:         "skillMatch",
		Label:       scoreComponentKeys["skillMatch"],
		Score:       scoring.Round2(result.SkillMatchScore),
		Weight:      math.Round(profile.TechnicalWeight * 100),
		Explanation: fmt.Sprintf("%d of %d profile skills found.", len(result.FoundRequired)+len(result.FoundPreferred), profile.AllSkills().Len()),
		Helped:      append(append([]string{}, result.FoundRequired...), result.FoundPreferred...),
		Dragged:     append([]string{}, result.MissingSkills...),
	}

	ats := ScoreComponent{
		Key:         "atsReadability",
		Label:       scoreComponentKeys["atsReadability"],
		Score:       scoring.Round2(result.ATSScore),
		Weight:      math.Round(profile.BusinessWeight * 100),
		Explanation: "Format heuristics applied to the extracted text.",
		Helped:      []string{},
		Dragged:     []string{},
	}
	for _, f := range result.ATSFindings {
		switch {
		case f.Delta > 0:
			ats.Helped = append(ats.Helped, f.Message)
		case f.Delta < 0 || f.Code == "sections_missing":
			ats.Dragged = append(ats.Dragged, f.Message)
		}
	}

	length := ScoreComponent{
		Key:     "length",
		Label:   scoreComponentKeys["length"],
		Score:   scoring.Round2(result.LengthScore),
		Weight:  math.Round(profile.SoftWeight * 100),
		Helped:  []string{},
		Dragged: []string{},
	}
	if result.WordCount >= profile.MinWords {
		length.Explanation = fmt.Sprintf("%d words meets the %d word minimum.", result.WordCount, profile.MinWords)
		length.Helped = append(length.Helped, fmt.Sprintf("%d words", result.WordCount))
	} else {
		length.Explanation = fmt.Sprintf("%d words is below the %d word minimum.", result.WordCount, profile.MinWords)
		length.Dragged = append(length.Dragged, fmt.Sprintf("%d words short", profile.MinWords-result.WordCount))
	}

	components := []ScoreComponent{skill, ats, length}
	for i := range components {
		components[i].Contribution = scoring.Round2(components[i].Score * components[i].Weight / 100)
	}
	return ScoreExplanation{
		OverallScore: scoring.Round2(result.OverallScore),
		Components:   components,
	}
}

func validateScoreExplanation(e *ScoreExplanation) error {
	if e == nil {
		return errors.New("score explanation is required")
	}
	if len(e.Components) != len(scoreComponentKeys) {
		return fmt.Errorf("components must contain %d items", len(scoreComponentKeys))
	}
	seen := make(map[string]bool, len(scoreComponentKeys))
	totalWeight := 0.0
	for i, c := range e.Components {
		key := strings.TrimSpace(c.Key)
		if _, ok := scoreComponentKeys[key]; !ok {
			return fmt.Errorf("components[%d].key must be one of: skillMatch, atsReadability, length", i)
		}
		if seen[key] {
			return fmt.Errorf("components[%d].key must be unique", i)
		}
		seen[key] = true
		if c.Score < 0 || c.Score > 100 {
			return fmt.Errorf("components[%d].score must be between 0 and 100", i)
		}
		if c.Weight < 0 || c.Weight > 100 {
			return fmt.Errorf("components[%d].weight must be between 0 and 100", i)
		}
		totalWeight += c.Weight
		if strings.TrimSpace(c.Explanation) == "" {
			return fmt.Errorf("components[%d].explanation is required", i)
		}
		for _, item := range append(append([]string{}, c.Helped...), c.Dragged...) {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("components[%d] must not include empty items", i)
			}
		}
	}
	if math.Abs(totalWeight-100) > 0.000001 {
		return fmt.Errorf("component weights must total 100, got %.3f", totalWeight)
	}
	return nil
}
