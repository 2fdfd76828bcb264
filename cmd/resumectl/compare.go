package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-analytics/internal/report"
	"resume-analytics/internal/scoring"
)

type compareSide struct {
	FileName        string                  `json:"fileName"`
	OverallScore    float64                 `json:"overallScore"`
	SkillMatchScore float64                 `json:"skillMatchScore"`
	ATSScore        float64                 `json:"atsScore"`
	WordCount       int                     `json:"wordCount"`
	Skills          scoring.ExtractedSkills `json:"skills"`
}

type compareOutput struct {
	Resume1    compareSide              `json:"resume1"`
	Resume2    compareSide              `json:"resume2"`
	Comparison scoring.ComparisonResult `json:"comparison"`
	Role       string                   `json:"role"`
	Level      string                   `json:"level"`
}

func newCompareCmd(engine engineFunc) *cobra.Command {
	var role, level, reportPath string

	cmd := &cobra.Command{
		Use:   "compare <resume1> <resume2>",
		Short: "Compare two resumes against the same profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine()
			if err != nil {
				return err
			}
			first, err := loadResume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			second, err := loadResume(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			a := first.analyze(e, role, level)
			b := second.analyze(e, role, level)
			cmp := scoring.Compare(
				a, a.AllExtractedSkills.Get(scoring.CategoryTechnical),
				b, b.AllExtractedSkills.Get(scoring.CategoryTechnical),
			)

			if reportPath != "" {
				data, err := report.RenderComparison(report.ComparisonInput{
					First:       report.ComparisonSide{FileName: first.FileName, Result: a},
					Second:      report.ComparisonSide{FileName: second.FileName, Result: b},
					Comparison:  cmp,
					GeneratedAt: today(),
				})
				if err != nil {
					return fmt.Errorf("render comparison: %w", err)
				}
				if err := writeFile(reportPath, data); err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), compareOutput{
				Resume1:    side(first.FileName, a),
				Resume2:    side(second.FileName, b),
				Comparison: cmp,
				Role:       a.Role,
				Level:      a.Level,
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", scoring.FallbackRole, "Target role")
	cmd.Flags().StringVar(&level, "level", scoring.FallbackLevel, "Experience level")
	cmd.Flags().StringVar(&reportPath, "report", "", "Also write a DOCX comparison report to this path")
	return cmd
}

func side(fileName string, r scoring.AnalysisResult) compareSide {
	return compareSide{
		FileName:        fileName,
		OverallScore:    scoring.Round2(r.OverallScore),
		SkillMatchScore: scoring.Round2(r.SkillMatchScore),
		ATSScore:        scoring.Round2(r.ATSScore),
		WordCount:       r.WordCount,
		Skills:          r.AllExtractedSkills,
	}
}
