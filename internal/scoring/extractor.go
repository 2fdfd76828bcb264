package scoring

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExtractedSkills holds the canonical phrases found in one document, per category.
type ExtractedSkills map[Category]SkillSet

// NewExtractedSkills returns a value with an empty set for every category.
func NewExtractedSkills() ExtractedSkills {
	out := make(ExtractedSkills, len(Categories))
	for _, cat := range Categories {
		out[cat] = make(SkillSet)
	}
	return out
}

// Get returns the set for a category, never nil.
func (e ExtractedSkills) Get(cat Category) SkillSet {
	if s, ok := e[cat]; ok && s != nil {
		return s
	}
	return SkillSet{}
}

// Flatten merges every category into one set.
func (e ExtractedSkills) Flatten() SkillSet {
	out := make(SkillSet)
	for _, s := range e {
		for item := range s {
			out.Add(item)
		}
	}
	return out
}

// Total returns the number of phrases across all categories.
func (e ExtractedSkills) Total() int {
	n := 0
	for _, s := range e {
		n += s.Len()
	}
	return n
}

// Extract returns the vocabulary phrases that occur as whole phrases in text.
func (v *Vocabulary) Extract(text string) ExtractedSkills {
	out := NewExtractedSkills()
	if text == "" {
		return out
	}
	lower := lowerText(text)
	for _, cat := range Categories {
		for _, m := range v.matchers[cat] {
			if m.re.MatchString(lower) {
				out[cat].Add(m.phrase)
			}
		}
	}
	return out
}

// lowerText allocates a Caser per call; cases.Caser is not safe for concurrent use.
func lowerText(text string) string {
	return cases.Lower(language.Und).String(text)
}
