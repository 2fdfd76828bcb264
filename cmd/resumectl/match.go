package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"resume-analytics/internal/scoring"
)

func newMatchCmd(engine engineFunc) *cobra.Command {
	var jdPath, jdText, title string

	cmd := &cobra.Command{
		Use:   "match <resume> --jd <job.txt>",
		Short: "Match a resume against a job description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jdPath == "" && jdText == "" {
				return errors.New("one of --jd or --jd-text is required")
			}
			e, err := engine()
			if err != nil {
				return err
			}
			resume, err := loadResume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			text := jdText
			if jdPath != "" {
				if text, err = loadText(cmd.Context(), jdPath); err != nil {
					return err
				}
			}
			if strings.TrimSpace(title) == "" {
				title = "Not specified"
			}
			match := scoring.MatchJobDescription(e.ExtractSkills(resume.Parsed.RawText), e.ExtractSkills(text), title)
			match.MatchPercentage = scoring.Round2(match.MatchPercentage)
			return writeJSON(cmd.OutOrStdout(), match)
		},
	}
	cmd.Flags().StringVar(&jdPath, "jd", "", "Job description file (text, PDF or DOCX)")
	cmd.Flags().StringVar(&jdText, "jd-text", "", "Job description text")
	cmd.Flags().StringVar(&title, "title", "", "Job title")
	return cmd
}
