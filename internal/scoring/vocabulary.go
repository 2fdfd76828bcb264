package scoring

import (
	"fmt"
	"regexp"
)

// Category names a skill vocabulary bucket.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryBusiness  Category = "business"
	CategorySoft      Category = "soft_skills"
)

// Categories lists every vocabulary category in extraction order.
var Categories = []Category{CategoryTechnical, CategoryBusiness, CategorySoft}

// Vocabulary maps each category to its ordered canonical phrases.
// A phrase belongs to exactly one category.
type Vocabulary struct {
	phrases  map[Category][]string
	matchers map[Category][]phraseMatcher
}

type phraseMatcher struct {
	phrase string
	re     *regexp.Regexp
}

// NewVocabulary compiles boundary-aware matchers for the given phrases.
// It fails when a phrase is empty, repeated, or listed under two categories.
func NewVocabulary(phrases map[Category][]string) (*Vocabulary, error) {
	v := &Vocabulary{
		phrases:  make(map[Category][]string, len(phrases)),
		matchers: make(map[Category][]phraseMatcher, len(phrases)),
	}
	owner := make(map[string]Category)
	for _, cat := range Categories {
		for _, phrase := range phrases[cat] {
			if phrase == "" {
				return nil, fmt.Errorf("vocabulary %s: empty phrase", cat)
			}
			if prev, ok := owner[phrase]; ok {
				return nil, fmt.Errorf("vocabulary: %q listed under %s and %s", phrase, prev, cat)
			}
			owner[phrase] = cat
			v.phrases[cat] = append(v.phrases[cat], phrase)
			v.matchers[cat] = append(v.matchers[cat], phraseMatcher{
				phrase: phrase,
				re:     compilePhrase(phrase),
			})
		}
	}
	for cat := range phrases {
		if _, ok := v.phrases[cat]; !ok && len(phrases[cat]) > 0 {
			return nil, fmt.Errorf("vocabulary: unknown category %q", cat)
		}
	}
	return v, nil
}

// Phrases returns a copy of the phrases listed under a category.
func (v *Vocabulary) Phrases(cat Category) []string {
	return append([]string(nil), v.phrases[cat]...)
}

// Contains reports whether phrase is canonical in any category.
func (v *Vocabulary) Contains(phrase string) bool {
	for _, cat := range Categories {
		for _, p := range v.phrases[cat] {
			if p == phrase {
				return true
			}
		}
	}
	return false
}

// compilePhrase matches the literal phrase only when it is not glued to a
// word rune on either side, so "java" never matches inside "javascript"
// and "c++" still matches before a space or comma.
func compilePhrase(phrase string) *regexp.Regexp {
	const boundary = `[^\p{L}\p{N}_]`
	return regexp.MustCompile(`(?:^|` + boundary + `)` + regexp.QuoteMeta(phrase) + `(?:$|` + boundary + `)`)
}

var defaultVocabulary = mustVocabulary(map[Category][]string{
	CategoryTechnical: {
		"python", "sql", "r", "java", "javascript", "typescript", "c++", "c#", "golang", "rust", "kotlin", "swift",
		"nodejs", "node", "react", "angular", "vue", "express", "django", "flask", "spring", "fastapi",
		"html", "css", "scss", "sass", "bootstrap", "tailwind", "material ui",
		"excel", "power bi", "tableau", "looker", "qlik", "informatica",
		"aws", "azure", "gcp", "google cloud", "kubernetes", "docker", "terraform", "ansible",
		"spark", "hadoop", "airflow", "etl", "data pipeline", "kafka", "rabbitmq",
		"machine learning", "ml", "deep learning", "nlp", "tensorflow", "pytorch", "keras", "scikit-learn",
		"pandas", "numpy", "matplotlib", "seaborn", "plotly",
		"postgresql", "mysql", "mongodb", "cassandra", "elasticsearch", "redis", "dynamodb",
		"linux", "unix", "git", "jenkins", "gitlab", "github", "bitbucket",
		"api", "rest", "graphql", "microservices", "soap", "websockets",
		"testing", "unittest", "jest", "mocha", "pytest", "selenium",
		"ci/cd", "ci", "cd", "devops", "monitoring", "prometheus", "grafana", "datadog",
		"design patterns", "oop", "solid", "mvc", "mvvm", "architecture",
		"database", "nosql", "orm", "sqlalchemy", "sequelize",
		"security", "encryption", "authentication", "oauth", "jwt", "ssl", "tls",
		"performance", "optimization", "scaling", "load balancing", "caching",
		"mobile", "android", "ios", "flutter", "react native", "xamarin",
		"responsive design", "ui", "ux", "accessibility", "seo", "webpack", "vite",
		"junit", "testng", "rspec", "cypress", "pupperteer", "appium", "xcode", "gradle", "maven",
	},
	CategoryBusiness: {
		"analytics", "business intelligence", "data analysis", "statistical analysis",
		"reporting", "dashboard", "visualization", "kpi", "metrics",
		"forecasting", "modeling", "ab testing", "experimental design",
		"requirement gathering", "stakeholder management", "process improvement",
		"project management", "agile", "scrum", "jira", "kanban",
		"documentation", "technical writing", "communication", "api documentation",
		"incident response", "troubleshooting", "debugging", "root cause analysis",
		"performance tuning", "cost optimization", "infrastructure",
		"compliance", "disaster recovery",
	},
	CategorySoft: {
		"leadership", "teamwork", "problem solving", "critical thinking",
		"time management", "collaboration", "presentation",
		"mentoring", "strategic thinking", "customer focus",
		"attention to detail", "analytical thinking", "adaptability", "creativity",
		"reliability", "responsibility", "accountability", "initiative",
	},
})

// DefaultVocabulary returns the built-in process-wide vocabulary.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}

func mustVocabulary(phrases map[Category][]string) *Vocabulary {
	v, err := NewVocabulary(phrases)
	if err != nil {
		panic(err)
	}
	return v
}
