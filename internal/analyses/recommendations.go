package analyses

import "resume-analytics/internal/analyses/recommendations"

// Recommendation is one improvement suggestion attached to an analysis.
type Recommendation = recommendations.Recommendation

// Recommendations derives improvement suggestions for a stored analysis
// from its missing skills and ATS findings, re-resolved against the
// stored role and level.
func (s *Service) Recommendations(analysis Analysis) []Recommendation {
	profile := s.Engine.ResolveProfile(analysis.Role, analysis.Level)
	recs := recommendations.GenerateRecommendations(recommendations.InputFor(analysis.Result(), profile))
	if recs == nil {
		return []Recommendation{}
	}
	return recs
}

// suggestionLines flattens recommendations into report bullet lines.
func suggestionLines(recs []Recommendation) []string {
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, r.Title+": "+r.Action)
	}
	return lines
}
