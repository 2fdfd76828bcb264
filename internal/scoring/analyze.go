package scoring

// AnalysisResult is the scored outcome for one document against one
// resolved role and level.
type AnalysisResult struct {
	Role               string          `json:"role"`
	Level              string          `json:"level"`
	OverallScore       float64         `json:"overallScore"`
	SkillMatchScore    float64         `json:"skillMatchScore"`
	ATSScore           float64         `json:"atsScore"`
	LengthScore        float64         `json:"lengthScore"`
	FoundRequired      []string        `json:"foundRequired"`
	FoundPreferred     []string        `json:"foundPreferred"`
	MissingSkills      []string        `json:"missingSkills"`
	WordCount          int             `json:"wordCount"`
	AllExtractedSkills ExtractedSkills `json:"allExtractedSkills"`
	ATSFindings        []Finding       `json:"atsFindings"`
}

// Engine binds a vocabulary and a requirement catalog. An Engine is
// immutable and safe for concurrent use.
type Engine struct {
	vocab   *Vocabulary
	catalog *Catalog
}

// NewEngine builds an engine; nil arguments select the built-in tables.
func NewEngine(vocab *Vocabulary, catalog *Catalog) *Engine {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{vocab: vocab, catalog: catalog}
}

var defaultEngine = NewEngine(nil, nil)

// DefaultEngine returns the engine over the built-in vocabulary and catalog.
func DefaultEngine() *Engine {
	return defaultEngine
}

// Vocabulary returns the engine's vocabulary.
func (e *Engine) Vocabulary() *Vocabulary { return e.vocab }

// Catalog returns the engine's requirement catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// ExtractSkills finds vocabulary phrases in text.
func (e *Engine) ExtractSkills(text string) ExtractedSkills {
	return e.vocab.Extract(text)
}

// ResolveProfile looks up a requirement profile, falling back as needed.
func (e *Engine) ResolveProfile(role, level string) RequirementProfile {
	return e.catalog.Resolve(role, level)
}

// Analyze scores a document whose skills were already extracted.
func (e *Engine) Analyze(extracted ExtractedSkills, rawText, filenameHint string, wordCount int, role, level string) AnalysisResult {
	if extracted == nil {
		extracted = NewExtractedSkills()
	}
	if wordCount < 0 {
		wordCount = 0
	}
	profile := e.ResolveProfile(role, level)
	match := MatchSkills(extracted, profile)
	format := EvaluateFormat(rawText, filenameHint)

	return AnalysisResult{
		Role:               profile.Role,
		Level:              profile.Level,
		OverallScore:       ComposeScore(match.Score, format.Score, wordCount, profile),
		SkillMatchScore:    match.Score,
		ATSScore:           format.Score,
		LengthScore:        LengthScore(wordCount, profile.MinWords),
		FoundRequired:      match.FoundRequired.Sorted(),
		FoundPreferred:     match.FoundPreferred.Sorted(),
		MissingSkills:      MissingSkills(extracted, profile).Sorted(),
		WordCount:          wordCount,
		AllExtractedSkills: extracted,
		ATSFindings:        format.Findings,
	}
}

// ExtractSkills runs the default engine's extractor.
func ExtractSkills(text string) ExtractedSkills {
	return defaultEngine.ExtractSkills(text)
}

// ResolveProfile resolves against the built-in catalog.
func ResolveProfile(role, level string) RequirementProfile {
	return defaultEngine.ResolveProfile(role, level)
}

// Analyze scores against the built-in catalog.
func Analyze(extracted ExtractedSkills, rawText, filenameHint string, wordCount int, role, level string) AnalysisResult {
	return defaultEngine.Analyze(extracted, rawText, filenameHint, wordCount, role, level)
}
