package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// FallbackRole is used when the requested role is absent or unknown.
	FallbackRole = "data_analyst"
	// FallbackLevel is used when the requested level is absent or unknown.
	FallbackLevel = "intermediate"

	weightTolerance = 1e-6
)

// Levels lists the seniority tiers every role is expected to define.
var Levels = []string{"fresher", "intermediate", "experienced"}

// ProfileSpec is the declarative form of a requirement profile, as written
// in the built-in table or in a custom catalog file.
type ProfileSpec struct {
	RequiredSkills  []string `json:"required_skills" yaml:"required_skills" validate:"dive,required"`
	PreferredSkills []string `json:"preferred_skills" yaml:"preferred_skills" validate:"dive,required"`
	TechnicalWeight float64  `json:"technical_weight" yaml:"technical_weight" validate:"gte=0,lte=1"`
	BusinessWeight  float64  `json:"business_weight" yaml:"business_weight" validate:"gte=0,lte=1"`
	SoftWeight      float64  `json:"soft_weight" yaml:"soft_weight" validate:"gte=0,lte=1"`
	MinWords        int      `json:"min_words" yaml:"min_words" validate:"gt=0"`
	MinSkills       int      `json:"min_skills" yaml:"min_skills" validate:"gte=0"`
}

// RequirementProfile is the resolved, immutable requirement set for a role and level.
type RequirementProfile struct {
	Role            string   `json:"role"`
	Level           string   `json:"level"`
	RequiredSkills  SkillSet `json:"requiredSkills"`
	PreferredSkills SkillSet `json:"preferredSkills"`
	TechnicalWeight float64  `json:"technicalWeight"`
	BusinessWeight  float64  `json:"businessWeight"`
	SoftWeight      float64  `json:"softWeight"`
	MinWords        int      `json:"minWords"`
	MinSkills       int      `json:"minSkills"`
}

// AllSkills returns required ∪ preferred.
func (p RequirementProfile) AllSkills() SkillSet {
	return p.RequiredSkills.Union(p.PreferredSkills)
}

// Catalog is a role × level table of requirement profiles.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	profiles map[string]map[string]RequirementProfile
}

var validate = validator.New()

// NewCatalog validates the specs and builds a catalog. The fallback pair
// (data_analyst, intermediate) must be present, and every role must define
// the intermediate level so the level-only fallback always resolves.
func NewCatalog(specs map[string]map[string]ProfileSpec) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]map[string]RequirementProfile, len(specs))}
	var errs []error
	for rawRole, levels := range specs {
		role := normalizeKey(rawRole)
		if role == "" {
			errs = append(errs, errors.New("catalog: empty role name"))
			continue
		}
		if _, dup := c.profiles[role]; dup {
			errs = append(errs, fmt.Errorf("catalog: role %q duplicates %s", rawRole, role))
			continue
		}
		profiles := make(map[string]RequirementProfile, len(levels))
		c.profiles[role] = profiles
		seen := make(map[string]bool, len(levels))
		for rawLevel, spec := range levels {
			level := normalizeKey(rawLevel)
			if seen[level] {
				errs = append(errs, fmt.Errorf("catalog: %s level %q duplicates %s", role, rawLevel, level))
				continue
			}
			seen[level] = true
			if err := validateSpec(spec); err != nil {
				errs = append(errs, fmt.Errorf("catalog: %s/%s: %w", role, level, err))
				continue
			}
			profiles[level] = RequirementProfile{
				Role:            role,
				Level:           level,
				RequiredSkills:  NewSkillSet(normalizePhrases(spec.RequiredSkills)...),
				PreferredSkills: NewSkillSet(normalizePhrases(spec.PreferredSkills)...),
				TechnicalWeight: spec.TechnicalWeight,
				BusinessWeight:  spec.BusinessWeight,
				SoftWeight:      spec.SoftWeight,
				MinWords:        spec.MinWords,
				MinSkills:       spec.MinSkills,
			}
		}
		if !seen[FallbackLevel] {
			errs = append(errs, fmt.Errorf("catalog: role %s has no %s level", role, FallbackLevel))
		}
	}
	if _, ok := c.profiles[FallbackRole][FallbackLevel]; !ok && len(errs) == 0 {
		errs = append(errs, fmt.Errorf("catalog: fallback profile %s/%s is required", FallbackRole, FallbackLevel))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func validateSpec(spec ProfileSpec) error {
	if err := validate.Struct(spec); err != nil {
		return err
	}
	sum := spec.TechnicalWeight + spec.BusinessWeight + spec.SoftWeight
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// Resolve looks up a profile. An unknown or empty role resolves to
// (data_analyst, intermediate); a known role with an unknown or empty level
// keeps the role and resolves the intermediate level. It never fails.
func (c *Catalog) Resolve(role, level string) RequirementProfile {
	role = normalizeKey(role)
	level = normalizeKey(level)

	levels, ok := c.profiles[role]
	if !ok {
		return c.profiles[FallbackRole][FallbackLevel]
	}
	if p, ok := levels[level]; ok {
		return p
	}
	return levels[FallbackLevel]
}

// Roles returns the catalog role names, sorted.
func (c *Catalog) Roles() []string {
	out := make([]string, 0, len(c.profiles))
	for role := range c.profiles {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// Levels returns the levels defined for a role, in seniority order where known.
func (c *Catalog) Levels(role string) []string {
	levels := c.profiles[normalizeKey(role)]
	out := make([]string, 0, len(levels))
	for _, l := range Levels {
		if _, ok := levels[l]; ok {
			out = append(out, l)
		}
	}
	var extra []string
	for l := range levels {
		if !containsString(Levels, l) {
			extra = append(extra, l)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizePhrases(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if p := normalizeKey(item); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
