package analyses

import (
	"time"

	"resume-analytics/internal/scoring"
)

type analyzeRequest struct {
	ResumeID string `json:"resumeId" binding:"required"`
	Role     string `json:"role"`
	Level    string `json:"level"`
}

type compareRequest struct {
	ResumeID1 string `json:"resumeId1" binding:"required"`
	ResumeID2 string `json:"resumeId2" binding:"required"`
	Role      string `json:"role"`
	Level     string `json:"level"`
}

type matchJobRequest struct {
	ResumeID       string `json:"resumeId" binding:"required"`
	JobDescription string `json:"jobDescription"`
	JobTitle       string `json:"jobTitle"`
}

// AnalyzeResponse is returned after scoring a resume.
type AnalyzeResponse struct {
	AnalysisID      string    `json:"analysisId"`
	ResumeID        string    `json:"resumeId"`
	OverallScore    float64   `json:"overallScore"`
	SkillMatchScore float64   `json:"skillMatchScore"`
	ATSScore        float64   `json:"atsScore"`
	FoundRequired   []string  `json:"foundRequired"`
	FoundPreferred  []string  `json:"foundPreferred"`
	MissingSkills   []string  `json:"missingSkills"`
	WordCount       int       `json:"wordCount"`
	Role            string    `json:"role"`
	Level           string    `json:"level"`
	Timestamp       time.Time `json:"timestamp"`
}

// HistoryItem is one row of the analysis history.
type HistoryItem struct {
	AnalysisID      string    `json:"analysisId"`
	ResumeID        string    `json:"resumeId"`
	FileName        string    `json:"fileName"`
	Role            string    `json:"role"`
	Level           string    `json:"level"`
	OverallScore    float64   `json:"overallScore"`
	SkillMatchScore float64   `json:"skillMatchScore"`
	ATSScore        float64   `json:"atsScore"`
	Timestamp       time.Time `json:"timestamp"`
}

// HistoryResponse lists the user's analyses.
type HistoryResponse struct {
	Total    int           `json:"total"`
	Analyses []HistoryItem `json:"analyses"`
}

// DetailResponse is the full view of a stored analysis.
type DetailResponse struct {
	AnalysisID      string                  `json:"analysisId"`
	ResumeID        string                  `json:"resumeId"`
	FileName        string                  `json:"fileName"`
	Role            string                  `json:"role"`
	Level           string                  `json:"level"`
	OverallScore    float64                 `json:"overallScore"`
	SkillMatchScore float64                 `json:"skillMatchScore"`
	ATSScore        float64                 `json:"atsScore"`
	LengthScore     float64                 `json:"lengthScore"`
	WordCount       int                     `json:"wordCount"`
	ExtractedSkills scoring.ExtractedSkills `json:"extractedSkills"`
	MissingSkills   []string                `json:"missingSkills"`
	FoundSkills     []SkillRow              `json:"foundSkills"`
	ATSFindings     []scoring.Finding       `json:"atsFindings"`
	ScoreBreakdown  ScoreExplanation        `json:"scoreBreakdown"`
	Recommendations []Recommendation        `json:"recommendations"`
	Timestamp       time.Time               `json:"timestamp"`
}

// ResumeScore is one side of a comparison response.
type ResumeScore struct {
	ID              string                  `json:"id"`
	FileName        string                  `json:"fileName"`
	OverallScore    float64                 `json:"overallScore"`
	SkillMatchScore float64                 `json:"skillMatchScore"`
	ATSScore        float64                 `json:"atsScore"`
	WordCount       int                     `json:"wordCount"`
	Skills          scoring.ExtractedSkills `json:"skills"`
}

// CompareResponse contrasts two resumes.
type CompareResponse struct {
	Resume1    ResumeScore              `json:"resume1"`
	Resume2    ResumeScore              `json:"resume2"`
	Comparison scoring.ComparisonResult `json:"comparison"`
	Role       string                   `json:"role"`
	Level      string                   `json:"level"`
}

// MatchJobResponse is a resume matched against a job description.
type MatchJobResponse struct {
	JobTitle        string                `json:"jobTitle"`
	ResumeID        string                `json:"resumeId"`
	ResumeFileName  string                `json:"resumeFileName"`
	MatchPercentage float64               `json:"matchPercentage"`
	FitLevel        scoring.FitLevel      `json:"fitLevel"`
	TechnicalSkills scoring.CategoryMatch `json:"technicalSkills"`
	BusinessSkills  scoring.CategoryMatch `json:"businessSkills"`
	Recommendation  string                `json:"recommendation"`
	Timestamp       time.Time             `json:"timestamp"`
}

func toAnalyzeResponse(a Analysis) AnalyzeResponse {
	res := a.Result()
	return AnalyzeResponse{
		AnalysisID:      a.ID,
		ResumeID:        a.ResumeID,
		OverallScore:    scoring.Round2(a.OverallScore),
		SkillMatchScore: scoring.Round2(a.SkillMatchScore),
		ATSScore:        scoring.Round2(a.ATSScore),
		FoundRequired:   nonNil(res.FoundRequired),
		FoundPreferred:  nonNil(res.FoundPreferred),
		MissingSkills:   nonNil(a.MissingSkills),
		WordCount:       a.WordCount,
		Role:            a.Role,
		Level:           a.Level,
		Timestamp:       a.CreatedAt,
	}
}

func toHistoryItem(a Analysis) HistoryItem {
	return HistoryItem{
		AnalysisID:      a.ID,
		ResumeID:        a.ResumeID,
		FileName:        a.FileName,
		Role:            a.Role,
		Level:           a.Level,
		OverallScore:    scoring.Round2(a.OverallScore),
		SkillMatchScore: scoring.Round2(a.SkillMatchScore),
		ATSScore:        scoring.Round2(a.ATSScore),
		Timestamp:       a.CreatedAt,
	}
}

func toResumeScore(s Scored) ResumeScore {
	return ResumeScore{
		ID:              s.Resume.ID,
		FileName:        s.Resume.FileName,
		OverallScore:    scoring.Round2(s.Result.OverallScore),
		SkillMatchScore: scoring.Round2(s.Result.SkillMatchScore),
		ATSScore:        scoring.Round2(s.Result.ATSScore),
		WordCount:       s.Result.WordCount,
		Skills:          s.Result.AllExtractedSkills,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
