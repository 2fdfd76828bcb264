package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analytics/internal/report"
	"resume-analytics/internal/scoring"
	"resume-analytics/internal/shared/server/middleware"
	"resume-analytics/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/history", h.history)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.GET("/report/:id", h.downloadReport)
	rg.POST("/compare", h.compare)
	rg.POST("/compare/report", h.compareReport)
	rg.POST("/match-job-description", h.matchJob)
	rg.GET("/roles", h.roles)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "resumeId is required", err)
		return
	}
	c.Set("resumeId", req.ResumeID)

	analysis, err := h.Svc.Analyze(c.Request.Context(), middleware.UserIDFromContext(c), req.ResumeID, req.Role, req.Level)
	if err != nil {
		h.writeError(c, err, "Error analyzing resume")
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.OK(c, toAnalyzeResponse(analysis))
}

func (h *Handler) history(c *gin.Context) {
	limit, offset := respond.Page(c, 20, 100)
	items, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	out := make([]HistoryItem, 0, len(items))
	for _, a := range items {
		out = append(out, toHistoryItem(a))
	}
	respond.OK(c, HistoryResponse{Total: len(out), Analyses: out})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	a, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), analysisID)
	if err != nil {
		h.writeError(c, err, "failed to fetch analysis")
		return
	}
	skills := a.Skills
	if skills == nil {
		skills = []SkillRow{}
	}
	findings := a.ATSFindings
	if findings == nil {
		findings = []scoring.Finding{}
	}
	respond.OK(c, DetailResponse{
		AnalysisID:      a.ID,
		ResumeID:        a.ResumeID,
		FileName:        a.FileName,
		Role:            a.Role,
		Level:           a.Level,
		OverallScore:    scoring.Round2(a.OverallScore),
		SkillMatchScore: scoring.Round2(a.SkillMatchScore),
		ATSScore:        scoring.Round2(a.ATSScore),
		LengthScore:     scoring.Round2(a.LengthScore),
		WordCount:       a.WordCount,
		ExtractedSkills: a.ExtractedSkills,
		MissingSkills:   nonNil(a.MissingSkills),
		FoundSkills:     skills,
		ATSFindings:     findings,
		ScoreBreakdown:  h.Svc.Explain(a),
		Recommendations: h.Svc.Recommendations(a),
		Timestamp:       a.CreatedAt,
	})
}

func (h *Handler) downloadReport(c *gin.Context) {
	analysisID := c.Param("id")
	c.Set("analysisId", analysisID)

	fileName, data, err := h.Svc.Report(c.Request.Context(), middleware.UserIDFromContext(c), analysisID)
	if err != nil {
		h.writeError(c, err, "Error generating report")
		return
	}
	respond.Attachment(c, fileName, report.ContentType, data)
}

func (h *Handler) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "resumeId1 and resumeId2 are required", err)
		return
	}
	cmp, err := h.Svc.Compare(c.Request.Context(), middleware.UserIDFromContext(c), req.ResumeID1, req.ResumeID2, req.Role, req.Level)
	if err != nil {
		if errors.Is(err, ErrResumeNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "One or both resumes not found", nil)
			return
		}
		h.writeError(c, err, "Error comparing resumes")
		return
	}
	respond.OK(c, CompareResponse{
		Resume1:    toResumeScore(cmp.First),
		Resume2:    toResumeScore(cmp.Second),
		Comparison: cmp.Comparison,
		Role:       cmp.First.Result.Role,
		Level:      cmp.First.Result.Level,
	})
}

func (h *Handler) compareReport(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "resumeId1 and resumeId2 are required", err)
		return
	}
	fileName, data, err := h.Svc.CompareReport(c.Request.Context(), middleware.UserIDFromContext(c), req.ResumeID1, req.ResumeID2, req.Role, req.Level)
	if err != nil {
		if errors.Is(err, ErrResumeNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "One or both resumes not found", nil)
			return
		}
		h.writeError(c, err, "Error generating report")
		return
	}
	respond.Attachment(c, fileName, report.ContentType, data)
}

func (h *Handler) matchJob(c *gin.Context) {
	var req matchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "resumeId is required", err)
		return
	}
	c.Set("resumeId", req.ResumeID)

	m, err := h.Svc.MatchJob(c.Request.Context(), middleware.UserIDFromContext(c), req.ResumeID, req.JobDescription, req.JobTitle)
	if err != nil {
		h.writeError(c, err, "Error matching job description")
		return
	}
	respond.OK(c, MatchJobResponse{
		JobTitle:        m.Match.JobTitle,
		ResumeID:        m.Resume.ID,
		ResumeFileName:  m.Resume.FileName,
		MatchPercentage: scoring.Round2(m.Match.MatchPercentage),
		FitLevel:        m.Match.FitLevel,
		TechnicalSkills: m.Match.TechnicalSkills,
		BusinessSkills:  m.Match.BusinessSkills,
		Recommendation:  m.Match.Recommendation,
		Timestamp:       h.Svc.now(),
	})
}

func (h *Handler) roles(c *gin.Context) {
	respond.OK(c, gin.H{
		"roles":        h.Svc.Roles(),
		"defaultRole":  scoring.FallbackRole,
		"defaultLevel": scoring.FallbackLevel,
	})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrResumeNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Analysis not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "Access denied", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
