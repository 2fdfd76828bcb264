package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_WholePhraseOnly(t *testing.T) {
	got := ExtractSkills("Built SPAs in JavaScript and TypeScript.")
	tech := got.Get(CategoryTechnical)

	assert.True(t, tech.Has("javascript"))
	assert.True(t, tech.Has("typescript"))
	assert.False(t, tech.Has("java"), "java must not match inside javascript")
}

func TestExtractSkills_LiteralSpecialCharacters(t *testing.T) {
	got := ExtractSkills("Languages: C++, C#; pipelines with CI/CD and a Power BI dashboard")
	tech := got.Get(CategoryTechnical)

	for _, want := range []string{"c++", "c#", "ci/cd", "ci", "cd", "power bi"} {
		assert.Truef(t, tech.Has(want), "expected %q", want)
	}
	assert.True(t, got.Get(CategoryBusiness).Has("dashboard"))
}

func TestExtractSkills_MultiWordAndCategories(t *testing.T) {
	got := ExtractSkills("Machine Learning engineer. Strong leadership and stakeholder management.")

	assert.True(t, got.Get(CategoryTechnical).Has("machine learning"))
	assert.True(t, got.Get(CategorySoft).Has("leadership"))
	assert.True(t, got.Get(CategoryBusiness).Has("stakeholder management"))
	assert.False(t, got.Get(CategoryTechnical).Has("ml"))
}

func TestExtractSkills_Empty(t *testing.T) {
	got := ExtractSkills("")
	require.Len(t, got, len(Categories))
	assert.Zero(t, got.Total())
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Python developer with SQL, Docker, Kubernetes, communication, teamwork and REST APIs"
	assert.Equal(t, ExtractSkills(text), ExtractSkills(text))
}

func TestExtractSkills_OnlyVocabularyPhrases(t *testing.T) {
	vocab := DefaultVocabulary()
	text := "Senior data engineer: Spark, Airflow, Kafka, pandas, numpy, agile, scrum, mentoring, python3, sqlite"
	got := ExtractSkills(text)

	for _, cat := range Categories {
		for phrase := range got.Get(cat) {
			assert.NotEmpty(t, phrase)
			assert.Contains(t, vocab.Phrases(cat), phrase)
		}
	}
	assert.False(t, got.Get(CategoryTechnical).Has("python"), "python3 is a different token")
	assert.False(t, got.Get(CategoryTechnical).Has("sql"), "sqlite is a different token")
}

func TestNewVocabulary_RejectsOverlap(t *testing.T) {
	_, err := NewVocabulary(map[Category][]string{
		CategoryTechnical: {"python", "documentation"},
		CategoryBusiness:  {"documentation"},
	})
	require.Error(t, err)

	_, err = NewVocabulary(map[Category][]string{CategorySoft: {""}})
	require.Error(t, err)

	_, err = NewVocabulary(map[Category][]string{"hobbies": {"chess"}})
	require.Error(t, err)
}

func TestDefaultVocabulary_Disjoint(t *testing.T) {
	seen := map[string]Category{}
	for _, cat := range Categories {
		for _, phrase := range DefaultVocabulary().Phrases(cat) {
			prev, dup := seen[phrase]
			assert.Falsef(t, dup, "%q in %s and %s", phrase, prev, cat)
			seen[phrase] = cat
		}
	}
}

func TestMatchSkills_DataAnalystFresher(t *testing.T) {
	extracted := ExtractSkills("Python, SQL, Excel, Tableau")
	profile := ResolveProfile("data_analyst", "fresher")

	m := MatchSkills(extracted, profile)

	assert.Equal(t, []string{"excel", "python", "sql"}, m.FoundRequired.Sorted())
	assert.Equal(t, []string{"tableau"}, m.FoundPreferred.Sorted())
	assert.InDelta(t, 0.75, m.RequiredRatio, 1e-9)
	assert.InDelta(t, 0.2, m.PreferredRatio, 1e-9)
	assert.InDelta(t, 58.5, m.Score, 1e-9)
}

func TestMatchSkills_EmptyRequirements(t *testing.T) {
	profile := RequirementProfile{RequiredSkills: SkillSet{}, PreferredSkills: SkillSet{}, MinWords: 1}
	m := MatchSkills(ExtractSkills("python sql"), profile)
	assert.Zero(t, m.Score)
}

func TestFormatScore_WorstCaseClampsToZero(t *testing.T) {
	text := strings.Repeat("a", 50)
	assert.Equal(t, 0.0, FormatScore(text, "resume.txt"))
}

func TestFormatScore_Adjustments(t *testing.T) {
	body := "Education: BSc. Experience: 3 years. Skills: SQL. jane@example.com +1 555 123 4567 " + strings.Repeat("x", 200)

	tests := []struct {
		name     string
		text     string
		filename string
		want     float64
	}{
		{"full credit", body, "cv.pdf", 80},
		{"upper-case extension", body, "CV.DOCX", 80},
		{"wrong extension", body, "cv.txt", 50},
		{"banned markers", body + " photograph fancy", "cv.pdf", 70},
		{"no contact", strings.ReplaceAll(body, "@", " at "), "cv.pdf", 70},
		{"one section", "experience " + strings.Repeat("y", 200) + " a@b.io 42", "cv.pdf", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FormatScore(tt.text, tt.filename), 1e-9)
		})
	}
}

func TestEvaluateFormat_Findings(t *testing.T) {
	report := EvaluateFormat("short image", "cv.png")
	codes := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		codes = append(codes, f.Code)
	}
	assert.Contains(t, codes, "unsupported_extension")
	assert.Contains(t, codes, "banned_marker")
	assert.Contains(t, codes, "too_short")
	assert.Contains(t, codes, "missing_contact")
	assert.Contains(t, codes, "sections_missing")
	assert.Zero(t, report.Score)
}

func TestLengthScore_Boundary(t *testing.T) {
	assert.Equal(t, 100.0, LengthScore(300, 300))
	assert.Equal(t, 100.0, LengthScore(900, 300))
	assert.Less(t, LengthScore(299, 300), 100.0)
	assert.InDelta(t, 50.0, LengthScore(150, 300), 1e-9)
	assert.Zero(t, LengthScore(0, 300))
}

func TestComposeScore_UsesProfileWeights(t *testing.T) {
	profile := ResolveProfile("data_analyst", "fresher")
	// 58.5*0.4 + 80*0.4 + 50*0.2
	got := ComposeScore(58.5, 80, 125, profile)
	assert.InDelta(t, 65.4, got, 1e-9)
}

func TestResolveProfile_Fallbacks(t *testing.T) {
	def := ResolveProfile("data_analyst", "intermediate")

	assert.Equal(t, def, ResolveProfile("astronaut", "experienced"))
	assert.Equal(t, def, ResolveProfile("", ""))

	p := ResolveProfile("ml_engineer", "principal")
	assert.Equal(t, "ml_engineer", p.Role)
	assert.Equal(t, "intermediate", p.Level)

	p = ResolveProfile("  ML_Engineer ", "Experienced")
	assert.Equal(t, "ml_engineer", p.Role)
	assert.Equal(t, "experienced", p.Level)
}

func TestAnalyze_UnknownRoleMatchesFallback(t *testing.T) {
	text := "Experienced analyst. SQL, Python, Tableau. Education: MSc. a@b.com 555-123-4567"
	extracted := ExtractSkills(text)

	got := Analyze(extracted, text, "cv.pdf", 12, "astronaut", "")
	want := Analyze(extracted, text, "cv.pdf", 12, "data_analyst", "intermediate")
	assert.Equal(t, want, got)
}

func TestAnalyze_ScoresStayInRange(t *testing.T) {
	inputs := []struct {
		text, file, role, level string
		words                   int
	}{
		{"", "", "", "", 0},
		{"", "x.exe", "astronaut", "god", -5},
		{strings.Repeat("python sql excel analytics tableau power bi ", 200), "a.pdf", "data_analyst", "fresher", 100000},
		{"image image photograph fancy", "a.txt", "frontend_developer", "experienced", 3},
	}
	for _, in := range inputs {
		res := Analyze(ExtractSkills(in.text), in.text, in.file, in.words, in.role, in.level)
		for _, s := range []float64{res.OverallScore, res.SkillMatchScore, res.ATSScore, res.LengthScore} {
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 100.0)
		}
	}
}

func TestAnalyze_MissingSkillsPartitionProfile(t *testing.T) {
	for _, role := range DefaultCatalog().Roles() {
		for _, level := range DefaultCatalog().Levels(role) {
			text := "python sql excel docker aws react git communication leadership agile"
			res := Analyze(ExtractSkills(text), text, "cv.docx", 400, role, level)
			profile := ResolveProfile(role, level)

			union := NewSkillSet(res.MissingSkills...).
				Union(NewSkillSet(res.FoundRequired...)).
				Union(NewSkillSet(res.FoundPreferred...))
			assert.Equal(t, profile.AllSkills().Sorted(), union.Sorted(), "%s/%s", role, level)
		}
	}
}

func TestCompare_TieGoesToSecond(t *testing.T) {
	a := AnalysisResult{OverallScore: 70, SkillMatchScore: 60, ATSScore: 80}
	b := AnalysisResult{OverallScore: 70, SkillMatchScore: 50, ATSScore: 90}

	got := Compare(a, NewSkillSet("python", "sql", "docker"), b, NewSkillSet("python", "aws"))

	assert.Equal(t, VerdictSecond, got.BetterOverallScore)
	assert.Equal(t, VerdictFirst, got.BetterSkillMatch)
	assert.Equal(t, VerdictSecond, got.BetterATSScore)
	assert.Equal(t, []string{"python"}, got.SharedTechnicalSkills)
	assert.Equal(t, []string{"docker", "sql"}, got.UniqueToFirst)
	assert.Equal(t, []string{"aws"}, got.UniqueToSecond)
	assert.Equal(t, 1, got.SharedSkillCount)
}

func TestMatchJobDescription_PoorMatch(t *testing.T) {
	resume := ExtractedSkills{
		CategoryTechnical: NewSkillSet("python", "sql"),
		CategoryBusiness:  NewSkillSet(),
	}
	jd := ExtractedSkills{
		CategoryTechnical: NewSkillSet("python", "aws"),
		CategoryBusiness:  NewSkillSet("excel"),
	}

	got := MatchJobDescription(resume, jd, "Data Analyst")

	assert.Equal(t, 33.33, Round2(got.MatchPercentage))
	assert.Equal(t, FitPoor, got.FitLevel)
	assert.Equal(t, []string{"python"}, got.TechnicalSkills.Matched)
	assert.Equal(t, []string{"aws"}, got.TechnicalSkills.Missing)
	assert.Equal(t, 1, got.TechnicalSkills.MatchCount)
	assert.Equal(t, 2, got.TechnicalSkills.RequiredCount)
	assert.Equal(t, []string{"excel"}, got.BusinessSkills.Missing)
	assert.Equal(t, "You match 33% of the job requirements. Focus on acquiring: aws", got.Recommendation)
}

// Soft skills never count toward a job match, even when both texts share them.
func TestMatchJobDescription_IgnoresSoftSkills(t *testing.T) {
	resume := ExtractSkills("leadership teamwork python")
	jd := ExtractSkills("We value leadership and teamwork. Python required.")

	got := MatchJobDescription(resume, jd, "")
	assert.Equal(t, 100.0, got.MatchPercentage)
	assert.Equal(t, 1, got.TechnicalSkills.RequiredCount+got.BusinessSkills.RequiredCount)
	assert.Equal(t, "You match 100% of the job requirements. Focus on acquiring: none", got.Recommendation)
}

func TestMatchJobDescription_NoRequirements(t *testing.T) {
	got := MatchJobDescription(ExtractSkills("python"), ExtractSkills("friendly team"), "")
	assert.Zero(t, got.MatchPercentage)
	assert.Equal(t, FitPoor, got.FitLevel)
}

func TestMatchJobDescription_RecommendsAtMostFive(t *testing.T) {
	jd := ExtractSkills("aws azure docker kubernetes terraform ansible golang rust")
	got := MatchJobDescription(NewExtractedSkills(), jd, "Platform")
	assert.Equal(t,
		"You match 0% of the job requirements. Focus on acquiring: ansible, aws, azure, docker, golang",
		got.Recommendation)
}

func TestFitLevelFor_Bands(t *testing.T) {
	assert.Equal(t, FitExcellent, FitLevelFor(80))
	assert.Equal(t, FitGood, FitLevelFor(79.99))
	assert.Equal(t, FitGood, FitLevelFor(60))
	assert.Equal(t, FitModerate, FitLevelFor(40))
	assert.Equal(t, FitPoor, FitLevelFor(39.9))
}
