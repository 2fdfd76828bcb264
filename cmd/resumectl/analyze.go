package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-analytics/internal/analyses/recommendations"
	"resume-analytics/internal/report"
	"resume-analytics/internal/scoring"
)

type analyzeOutput struct {
	FileName        string                           `json:"fileName"`
	Role            string                           `json:"role"`
	Level           string                           `json:"level"`
	OverallScore    float64                          `json:"overallScore"`
	SkillMatchScore float64                          `json:"skillMatchScore"`
	ATSScore        float64                          `json:"atsScore"`
	LengthScore     float64                          `json:"lengthScore"`
	WordCount       int                              `json:"wordCount"`
	Email           string                           `json:"email,omitempty"`
	Phone           string                           `json:"phone,omitempty"`
	FoundRequired   []string                         `json:"foundRequired"`
	FoundPreferred  []string                         `json:"foundPreferred"`
	MissingSkills   []string                         `json:"missingSkills"`
	ExtractedSkills scoring.ExtractedSkills          `json:"extractedSkills"`
	ATSFindings     []scoring.Finding                `json:"atsFindings"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
}

func newAnalyzeCmd(engine engineFunc) *cobra.Command {
	var role, level, reportPath string

	cmd := &cobra.Command{
		Use:   "analyze <resume.pdf|resume.docx>",
		Short: "Score a resume against a role and level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine()
			if err != nil {
				return err
			}
			resume, err := loadResume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			result := resume.analyze(e, role, level)
			profile := e.ResolveProfile(role, level)
			recs := recommendations.GenerateRecommendations(recommendations.InputFor(result, profile))

			if reportPath != "" {
				suggestions := make([]string, 0, len(recs))
				for _, rec := range recs {
					suggestions = append(suggestions, rec.Title+": "+rec.Action)
				}
				data, err := report.RenderAnalysis(report.AnalysisInput{
					AnalysisID:      "local",
					FileName:        resume.FileName,
					GeneratedAt:     today(),
					Role:            result.Role,
					Level:           result.Level,
					OverallScore:    result.OverallScore,
					SkillMatchScore: result.SkillMatchScore,
					ATSScore:        result.ATSScore,
					WordCount:       result.WordCount,
					Extracted:       result.AllExtractedSkills,
					Missing:         result.MissingSkills,
					Suggestions:     suggestions,
				})
				if err != nil {
					return fmt.Errorf("render report: %w", err)
				}
				if err := writeFile(reportPath, data); err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), analyzeOutput{
				FileName:        resume.FileName,
				Role:            result.Role,
				Level:           result.Level,
				OverallScore:    scoring.Round2(result.OverallScore),
				SkillMatchScore: scoring.Round2(result.SkillMatchScore),
				ATSScore:        scoring.Round2(result.ATSScore),
				LengthScore:     scoring.Round2(result.LengthScore),
				WordCount:       result.WordCount,
				Email:           resume.Parsed.Email,
				Phone:           resume.Parsed.Phone,
				FoundRequired:   nonNil(result.FoundRequired),
				FoundPreferred:  nonNil(result.FoundPreferred),
				MissingSkills:   nonNil(result.MissingSkills),
				ExtractedSkills: result.AllExtractedSkills,
				ATSFindings:     result.ATSFindings,
				Recommendations: recs,
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", scoring.FallbackRole, "Target role")
	cmd.Flags().StringVar(&level, "level", scoring.FallbackLevel, "Experience level (fresher, intermediate, experienced)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Also write a DOCX report to this path")
	return cmd
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
