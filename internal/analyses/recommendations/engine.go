package recommendations

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

const maxRecommendations = 7

var (
	severityRanks = map[string]int{"critical": 3, "warning": 2, "info": 1}
	impactRanks   = map[string]int{"high": 3, "medium": 2, "low": 1}
	categoryRanks = map[string]int{"SKILLS": 4, "ATS": 3, "STRUCTURE": 2, "FORMATTING": 1}
)

type source func(Input) []Recommendation

var sources = []source{
	func(in Input) []Recommendation { return fromMissingRequired(in.MissingRequired, in.SkillMatchScore) },
	func(in Input) []Recommendation { return fromMissingPreferred(in.MissingPreferred) },
	func(in Input) []Recommendation { return fromFindings(in.Findings) },
	func(in Input) []Recommendation { return fromLength(in.WordCount, in.MinWords) },
}

// GenerateRecommendations turns a scored analysis into at most seven
// ordered suggestions. The same input always yields the same output.
func GenerateRecommendations(input Input) []Recommendation {
	var candidates []Recommendation
	for _, src := range sources {
		candidates = append(candidates, src(input)...)
	}

	out := dedupe(candidates)
	sortRecommendations(out)
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

func rank(table map[string]int, value string) int {
	return table[strings.TrimSpace(value)]
}

func severityRank(v string) int { return rank(severityRanks, strings.ToLower(v)) }
func impactRank(v string) int   { return rank(impactRanks, strings.ToLower(v)) }
func categoryRank(v string) int { return rank(categoryRanks, strings.ToUpper(v)) }

// sortRecommendations orders by severity, impact and category, highest
// first, then alphabetically by title.
func sortRecommendations(items []Recommendation) {
	slices.SortStableFunc(items, func(a, b Recommendation) int {
		return cmp.Or(
			cmp.Compare(severityRank(b.Severity), severityRank(a.Severity)),
			cmp.Compare(impactRank(b.Impact), impactRank(a.Impact)),
			cmp.Compare(categoryRank(b.Category), categoryRank(a.Category)),
			strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
		)
	})
}

// dedupe merges recommendations sharing an ID, keeping first-seen order.
func dedupe(items []Recommendation) []Recommendation {
	index := make(map[string]int, len(items))
	out := make([]Recommendation, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		if i, ok := index[id]; ok {
			out[i] = merge(out[i], item)
			continue
		}
		index[id] = len(out)
		out = append(out, item)
	}
	return out
}

func merge(into, from Recommendation) Recommendation {
	into.Title = cmp.Or(strings.TrimSpace(into.Title), from.Title)
	into.Why = cmp.Or(strings.TrimSpace(into.Why), from.Why)
	into.Action = cmp.Or(strings.TrimSpace(into.Action), from.Action)
	into.Category = cmp.Or(strings.TrimSpace(into.Category), from.Category)
	if severityRank(from.Severity) > severityRank(into.Severity) {
		into.Severity = from.Severity
	}
	if impactRank(from.Impact) > impactRank(into.Impact) {
		into.Impact = from.Impact
	}
	return into
}

// slugify makes a finding message usable as part of a recommendation ID.
func slugify(input string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	if out := strings.Trim(b.String(), "-"); out != "" {
		return out
	}
	return "item"
}
