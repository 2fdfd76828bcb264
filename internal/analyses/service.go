package analyses

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-analytics/internal/report"
	"resume-analytics/internal/resumes"
	"resume-analytics/internal/scoring"
	"resume-analytics/internal/shared/metrics"
	"resume-analytics/internal/shared/storage/object"
	"resume-analytics/internal/shared/telemetry"
	"resume-analytics/internal/shared/util"
)

const defaultJobTitle = "Not specified"

// ResumeSource loads a resume owned by a user.
type ResumeSource interface {
	Get(ctx context.Context, userID, resumeID string) (resumes.Resume, error)
}

// Service contains business logic for analyses.
type Service struct {
	Repo    Repo
	Resumes ResumeSource
	Engine  *scoring.Engine
	// Store caches rendered reports. Nil disables caching.
	Store object.ObjectStore
	Now   func() time.Time
}

// NewService constructs a Service. A nil engine uses the built-in catalog.
func NewService(repo Repo, resumeSource ResumeSource, engine *scoring.Engine, store object.ObjectStore) *Service {
	if engine == nil {
		engine = scoring.DefaultEngine()
	}
	return &Service{Repo: repo, Resumes: resumeSource, Engine: engine, Store: store}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Scored is a resume scored against a profile without being persisted.
type Scored struct {
	Resume resumes.Resume
	Result scoring.AnalysisResult
}

// Analyze scores a stored resume and persists the analysis.
func (s *Service) Analyze(ctx context.Context, userID, resumeID, role, level string) (Analysis, error) {
	startedAt := time.Now()
	scored, err := s.score(ctx, userID, resumeID, role, level)
	if err != nil {
		return Analysis{}, err
	}
	result := scored.Result

	analysis := Analysis{
		ID:              uuid.NewString(),
		UserID:          userID,
		ResumeID:        scored.Resume.ID,
		FileName:        scored.Resume.FileName,
		Role:            result.Role,
		Level:           result.Level,
		OverallScore:    result.OverallScore,
		SkillMatchScore: result.SkillMatchScore,
		ATSScore:        result.ATSScore,
		LengthScore:     result.LengthScore,
		WordCount:       result.WordCount,
		ExtractedSkills: result.AllExtractedSkills,
		MissingSkills:   result.MissingSkills,
		ATSFindings:     result.ATSFindings,
		Skills:          skillRows(result),
		CreatedAt:       s.now(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.persist_failed", map[string]any{
			"user_id":   userID,
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return Analysis{}, err
	}

	durationMs := float64(time.Since(startedAt).Microseconds()) / 1000
	metrics.IncAnalysis()
	metrics.ObserveOverallScore(analysis.OverallScore)
	metrics.ObserveAnalysisDurationMs(durationMs)
	telemetry.Info("analysis.completed", map[string]any{
		"user_id":       userID,
		"resume_id":     resumeID,
		"analysis_id":   analysis.ID,
		"role":          analysis.Role,
		"level":         analysis.Level,
		"overall_score": scoring.Round2(analysis.OverallScore),
		"duration_ms":   durationMs,
	})
	return analysis, nil
}

// score extracts skills from the stored resume text and scores it.
func (s *Service) score(ctx context.Context, userID, resumeID, role, level string) (Scored, error) {
	resume, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		return Scored{}, err
	}
	extracted := s.Engine.ExtractSkills(resume.OriginalText)
	result := s.Engine.Analyze(extracted, resume.OriginalText, resume.FileName, resume.WordCount, role, level)
	return Scored{Resume: resume, Result: result}, nil
}

func (s *Service) loadResume(ctx context.Context, userID, resumeID string) (resumes.Resume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return resumes.Resume{}, fmt.Errorf("%w: resumeId is required", ErrInvalidInput)
	}
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return resumes.Resume{}, ErrResumeNotFound
		}
		return resumes.Resume{}, err
	}
	return resume, nil
}

// Get fetches an analysis owned by userID.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	if strings.TrimSpace(analysisID) == "" {
		return Analysis{}, fmt.Errorf("%w: analysis id is required", ErrInvalidInput)
	}
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	if analysis.UserID != userID {
		return Analysis{}, ErrForbidden
	}
	return analysis, nil
}

// List returns the user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Explain breaks the overall score of a stored analysis into its components.
func (s *Service) Explain(analysis Analysis) ScoreExplanation {
	explanation := Explain(analysis.Result(), s.Engine.ResolveProfile(analysis.Role, analysis.Level))
	if err := validateScoreExplanation(&explanation); err != nil {
		telemetry.Warn("analysis.explanation_invalid", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
	}
	return explanation
}

// Report returns the DOCX report of an analysis and its download name.
// Rendered reports are cached in the object store per user.
func (s *Service) Report(ctx context.Context, userID, analysisID string) (string, []byte, error) {
	analysis, err := s.Get(ctx, userID, analysisID)
	if err != nil {
		return "", nil, err
	}
	now := s.now()
	fileName := report.AnalysisFileName(analysis.ID, now)
	key := object.ReportKey(util.HashUserKey(userID), analysis.ID)

	if cached, ok := s.cachedReport(ctx, key); ok {
		return fileName, cached, nil
	}

	data, err := report.RenderAnalysis(report.AnalysisInput{
		AnalysisID:      analysis.ID,
		FileName:        analysis.FileName,
		GeneratedAt:     now,
		Role:            analysis.Role,
		Level:           analysis.Level,
		OverallScore:    analysis.OverallScore,
		SkillMatchScore: analysis.SkillMatchScore,
		ATSScore:        analysis.ATSScore,
		WordCount:       analysis.WordCount,
		Extracted:       analysis.ExtractedSkills,
		Missing:         analysis.MissingSkills,
		Suggestions:     suggestionLines(s.Recommendations(analysis)),
	})
	if err != nil {
		return "", nil, fmt.Errorf("render report: %w", err)
	}

	if s.Store != nil {
		if _, err := s.Store.SaveWithKey(ctx, key, report.ContentType, bytes.NewReader(data)); err != nil {
			telemetry.Warn("report.cache_failed", map[string]any{
				"analysis_id": analysis.ID,
				"error":       err.Error(),
			})
		}
	}
	return fileName, data, nil
}

func (s *Service) cachedReport(ctx context.Context, key string) ([]byte, bool) {
	if s.Store == nil {
		return nil, false
	}
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, false
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// Comparison is two resumes scored against the same profile.
type Comparison struct {
	First      Scored
	Second     Scored
	Comparison scoring.ComparisonResult
}

// Compare scores two of the user's resumes concurrently and contrasts
// their technical skills and scores. Nothing is persisted.
func (s *Service) Compare(ctx context.Context, userID, resumeID1, resumeID2, role, level string) (Comparison, error) {
	var first, second Scored
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		first, err = s.score(gctx, userID, resumeID1, role, level)
		return err
	})
	g.Go(func() error {
		var err error
		second, err = s.score(gctx, userID, resumeID2, role, level)
		return err
	})
	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}

	cmp := scoring.Compare(
		first.Result, first.Result.AllExtractedSkills.Get(scoring.CategoryTechnical),
		second.Result, second.Result.AllExtractedSkills.Get(scoring.CategoryTechnical),
	)
	metrics.IncComparison()
	telemetry.Info("comparison.completed", map[string]any{
		"user_id":     userID,
		"resume_id_1": first.Resume.ID,
		"resume_id_2": second.Resume.ID,
		"shared":      cmp.SharedSkillCount,
	})
	return Comparison{First: first, Second: second, Comparison: cmp}, nil
}

// CompareReport renders a comparison as a DOCX report.
func (s *Service) CompareReport(ctx context.Context, userID, resumeID1, resumeID2, role, level string) (string, []byte, error) {
	cmp, err := s.Compare(ctx, userID, resumeID1, resumeID2, role, level)
	if err != nil {
		return "", nil, err
	}
	now := s.now()
	data, err := report.RenderComparison(report.ComparisonInput{
		First:       report.ComparisonSide{FileName: cmp.First.Resume.FileName, Result: cmp.First.Result},
		Second:      report.ComparisonSide{FileName: cmp.Second.Resume.FileName, Result: cmp.Second.Result},
		Comparison:  cmp.Comparison,
		GeneratedAt: now,
	})
	if err != nil {
		return "", nil, fmt.Errorf("render comparison: %w", err)
	}
	return report.ComparisonFileName(now), data, nil
}

// JobMatch is a resume matched against a job description.
type JobMatch struct {
	Resume resumes.Resume
	Match  scoring.JobMatchResult
}

// MatchJob measures how much of a job description the resume covers.
func (s *Service) MatchJob(ctx context.Context, userID, resumeID, jobDescription, jobTitle string) (JobMatch, error) {
	resume, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		return JobMatch{}, err
	}
	title := strings.TrimSpace(jobTitle)
	if title == "" {
		title = defaultJobTitle
	}
	match := scoring.MatchJobDescription(
		s.Engine.ExtractSkills(resume.OriginalText),
		s.Engine.ExtractSkills(jobDescription),
		title,
	)
	metrics.IncJobMatch()
	telemetry.Info("job_match.completed", map[string]any{
		"user_id":   userID,
		"resume_id": resume.ID,
		"fit_level": string(match.FitLevel),
	})
	return JobMatch{Resume: resume, Match: match}, nil
}

// RoleSummary describes one level of a catalog role.
type RoleSummary struct {
	Role            string   `json:"role"`
	DisplayName     string   `json:"displayName"`
	Level           string   `json:"level"`
	RequiredSkills  []string `json:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills"`
	MinWords        int      `json:"minWords"`
	MinSkills       int      `json:"minSkills"`
}

// Roles lists every role and level in the catalog.
func (s *Service) Roles() []RoleSummary {
	catalog := s.Engine.Catalog()
	out := []RoleSummary{}
	for _, role := range catalog.Roles() {
		for _, level := range catalog.Levels(role) {
			p := catalog.Resolve(role, level)
			out = append(out, RoleSummary{
				Role:            role,
				DisplayName:     report.DisplayName(role),
				Level:           level,
				RequiredSkills:  p.RequiredSkills.Sorted(),
				PreferredSkills: p.PreferredSkills.Sorted(),
				MinWords:        p.MinWords,
				MinSkills:       p.MinSkills,
			})
		}
	}
	return out
}
