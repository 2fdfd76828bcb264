package scoring

import (
	"encoding/json"
	"sort"
)

// SkillSet is an unordered set of canonical skill phrases.
// It marshals to a sorted JSON array so persisted payloads stay stable.
type SkillSet map[string]struct{}

// NewSkillSet builds a set from the given phrases, collapsing duplicates.
func NewSkillSet(items ...string) SkillSet {
	s := make(SkillSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts a phrase into the set.
func (s SkillSet) Add(item string) {
	s[item] = struct{}{}
}

// Has reports whether the phrase is in the set.
func (s SkillSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of phrases in the set.
func (s SkillSet) Len() int {
	return len(s)
}

// Intersect returns the phrases present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for item := range s {
		if other.Has(item) {
			out.Add(item)
		}
	}
	return out
}

// Minus returns the phrases of s that are not in other.
func (s SkillSet) Minus(other SkillSet) SkillSet {
	out := make(SkillSet)
	for item := range s {
		if !other.Has(item) {
			out.Add(item)
		}
	}
	return out
}

// Union returns a new set holding every phrase of s and other.
func (s SkillSet) Union(other SkillSet) SkillSet {
	out := make(SkillSet, len(s)+len(other))
	for item := range s {
		out.Add(item)
	}
	for item := range other {
		out.Add(item)
	}
	return out
}

// Sorted returns the phrases in lexical order. Never nil.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set.
func (s SkillSet) Clone() SkillSet {
	return s.Union(nil)
}

// MarshalJSON encodes the set as a sorted array.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of phrases into the set.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSkillSet(items...)
	return nil
}
