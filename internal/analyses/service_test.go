package analyses

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"resume-analytics/internal/resumes"
	"resume-analytics/internal/scoring"
	"resume-analytics/internal/shared/storage/object"
	"resume-analytics/internal/shared/storage/object/local"
	"resume-analytics/internal/shared/util"
)

type fakeResumes map[string]resumes.Resume

func (f fakeResumes) Get(ctx context.Context, userID, resumeID string) (resumes.Resume, error) {
	if err := ctx.Err(); err != nil {
		return resumes.Resume{}, err
	}
	r, ok := f[resumeID]
	if !ok || r.UserID != userID {
		return resumes.Resume{}, resumes.ErrNotFound
	}
	return r, nil
}

const (
	analystText = "Jane Doe jane@example.com 555-123-4567 Experience: SQL, Python, Excel and Tableau dashboards. " +
		"Education: BSc Statistics. Skills: analytics, visualization, teamwork."
	engineerText = "John Roe john@example.com 555-765-4321 Experience: SQL, AWS, Docker. Skills: leadership."
)

func newTestService(t *testing.T) (*Service, *MemoryRepo, object.ObjectStore) {
	t.Helper()
	repo := NewMemoryRepo()
	store := local.New(t.TempDir())
	src := fakeResumes{
		"r1": {ID: "r1", UserID: "user-1", FileName: "jane.pdf", OriginalText: analystText, WordCount: 22},
		"r2": {ID: "r2", UserID: "user-1", FileName: "john.docx", OriginalText: engineerText, WordCount: 13},
		"r3": {ID: "r3", UserID: "user-2", FileName: "other.pdf", OriginalText: analystText, WordCount: 22},
	}
	svc := NewService(repo, src, nil, store)
	svc.Now = func() time.Time { return time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) }
	return svc, repo, store
}

func TestAnalyzePersistsSkillRows(t *testing.T) {
	svc, repo, _ := newTestService(t)

	a, err := svc.Analyze(context.Background(), "user-1", "r1", "data_analyst", "intermediate")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.FileName != "jane.pdf" || a.Role != "data_analyst" || a.Level != "intermediate" {
		t.Fatalf("unexpected analysis metadata: %+v", a)
	}

	stored, err := repo.GetByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	categories := map[string]string{}
	for _, row := range stored.Skills {
		categories[row.Name] = row.Category
		if row.Proficiency != ProficiencyFound {
			t.Fatalf("unexpected proficiency %q", row.Proficiency)
		}
	}
	for _, name := range []string{"sql", "python", "excel", "analytics", "visualization"} {
		if categories[name] != SkillRequired {
			t.Fatalf("expected %s as required skill, got %q", name, categories[name])
		}
	}
	if categories["tableau"] != SkillPreferred {
		t.Fatalf("expected tableau as preferred skill, got %q", categories["tableau"])
	}
	if a.OverallScore < 0 || a.OverallScore > 100 {
		t.Fatalf("overall score out of range: %v", a.OverallScore)
	}
}

func TestAnalyzeUnknownRoleFallsBack(t *testing.T) {
	svc, _, _ := newTestService(t)

	a, err := svc.Analyze(context.Background(), "user-1", "r1", "astronaut", "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.Role != scoring.FallbackRole || a.Level != scoring.FallbackLevel {
		t.Fatalf("expected fallback profile, got %s/%s", a.Role, a.Level)
	}
}

func TestAnalyzeRejectsForeignResume(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Analyze(context.Background(), "user-1", "r3", "", "")
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
	_, err = svc.Analyze(context.Background(), "user-1", " ", "", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetChecksOwnership(t *testing.T) {
	svc, _, _ := newTestService(t)
	a, err := svc.Analyze(context.Background(), "user-1", "r1", "", "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _, _ := newTestService(t)
	base := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2"} {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.Now = func() time.Time { return at }
		if _, err := svc.Analyze(context.Background(), "user-1", id, "", ""); err != nil {
			t.Fatalf("analyze %s: %v", id, err)
		}
	}

	items, err := svc.List(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ResumeID != "r2" {
		t.Fatalf("expected r2 first, got %+v", items)
	}
}

func TestCompareSharesTechnicalSkills(t *testing.T) {
	svc, _, _ := newTestService(t)

	cmp, err := svc.Compare(context.Background(), "user-1", "r1", "r2", "data_analyst", "fresher")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if cmp.Comparison.SharedSkillCount != 1 || cmp.Comparison.SharedTechnicalSkills[0] != "sql" {
		t.Fatalf("expected sql as only shared skill, got %+v", cmp.Comparison)
	}
	if cmp.First.Result.Level != "fresher" || cmp.Second.Resume.FileName != "john.docx" {
		t.Fatalf("unexpected sides: %+v / %+v", cmp.First.Result, cmp.Second.Resume)
	}
	if cmp.Comparison.BetterSkillMatch != scoring.VerdictFirst {
		t.Fatalf("expected resume1 to have better skill match, got %s", cmp.Comparison.BetterSkillMatch)
	}
}

func TestCompareMissingResume(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Compare(context.Background(), "user-1", "r1", "r3", "", "")
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestMatchJobDefaultsTitle(t *testing.T) {
	svc, _, _ := newTestService(t)

	m, err := svc.MatchJob(context.Background(), "user-1", "r1", "We need SQL, Python, Spark and reporting.", "  ")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if m.Match.JobTitle != "Not specified" {
		t.Fatalf("unexpected title %q", m.Match.JobTitle)
	}
	// sql and python of sql, python, spark, reporting
	if m.Match.MatchPercentage != 50 || m.Match.FitLevel != scoring.FitModerate {
		t.Fatalf("unexpected match %v %s", m.Match.MatchPercentage, m.Match.FitLevel)
	}
}

func TestReportIsCachedPerUser(t *testing.T) {
	svc, _, store := newTestService(t)
	a, err := svc.Analyze(context.Background(), "user-1", "r1", "", "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	name, data, err := svc.Report(context.Background(), "user-1", a.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if name != "Resume_Analysis_"+a.ID+"_20260304.docx" {
		t.Fatalf("unexpected file name %q", name)
	}

	rc, err := store.Open(context.Background(), object.ReportKey(util.HashUserKey("user-1"), a.ID))
	if err != nil {
		t.Fatalf("expected cached report: %v", err)
	}
	defer rc.Close()
	cached, _ := io.ReadAll(rc)
	if len(cached) != len(data) {
		t.Fatalf("cached report differs: %d vs %d bytes", len(cached), len(data))
	}

	if _, _, err := svc.Report(context.Background(), "user-2", a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestExplainWeightsTotal100(t *testing.T) {
	svc, _, _ := newTestService(t)
	a, err := svc.Analyze(context.Background(), "user-1", "r2", "bi_engineer", "experienced")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	e := svc.Explain(a)
	if err := validateScoreExplanation(&e); err != nil {
		t.Fatalf("invalid explanation: %v", err)
	}
	if e.Components[0].Weight != 60 {
		t.Fatalf("expected skill weight 60, got %v", e.Components[0].Weight)
	}
	sum := 0.0
	for _, c := range e.Components {
		sum += c.Contribution
	}
	if diff := sum - e.OverallScore; diff > 0.05 || diff < -0.05 {
		t.Fatalf("contributions %v do not add up to %v", sum, e.OverallScore)
	}
}

func TestValidateScoreExplanationRejectsBadWeights(t *testing.T) {
	e := &ScoreExplanation{Components: []ScoreComponent{
		{Key: "skillMatch", Score: 10, Weight: 50, Explanation: "x"},
		{Key: "atsReadability", Score: 10, Weight: 30, Explanation: "x"},
		{Key: "length", Score: 10, Weight: 10, Explanation: "x"},
	}}
	if err := validateScoreExplanation(e); err == nil {
		t.Fatalf("expected weight total error")
	}
	e.Components[2].Key = "skillMatch"
	e.Components[2].Weight = 20
	if err := validateScoreExplanation(e); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestRolesListsEveryLevel(t *testing.T) {
	svc, _, _ := newTestService(t)

	roles := svc.Roles()
	catalog := scoring.DefaultCatalog()
	want := 0
	for _, r := range catalog.Roles() {
		want += len(catalog.Levels(r))
	}
	if len(roles) != want {
		t.Fatalf("expected %d entries, got %d", want, len(roles))
	}
	if roles[0].DisplayName == "" || len(roles[0].RequiredSkills) == 0 {
		t.Fatalf("unexpected summary: %+v", roles[0])
	}
}
