package normalizing

import (
	"strings"

	"github.com/jonathan/skill-sync/internal/taxonomy"
	"github.com/jonathan/skill-sync/internal/types"
)

// Normalize canonicalizes a raw skill mention and classifies it.
// It is a pure function of its input and the static tables: identical input
// always yields identical output.
//
// Steps: trim whitespace (empty input fails with EmptyMentionError), fold
// known aliases to their canonical name, apply the canonical-spelling table
// for known terms (unknown terms keep their trimmed input casing), then run
// taxonomy classification. Classification failure fails the whole call with
// the taxonomy's UnclassifiableSkillError, carrying the attempted canonical
// name.
func Normalize(raw string) (types.NormalizedSkill, error) {
	return normalize(raw, "")
}

// NormalizeWithHint is Normalize with a category-hint fallback: when the
// taxonomy's own rules cannot place the name, a valid hint decides the
// category instead of failing. The taxonomy always wins over the hint for
// names it recognizes, so classification stays centrally deterministic.
func NormalizeWithHint(raw, hint string) (types.NormalizedSkill, error) {
	return normalize(raw, hint)
}

func normalize(raw, hint string) (types.NormalizedSkill, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return types.NormalizedSkill{}, &EmptyMentionError{Raw: raw}
	}

	canonical := canonicalName(trimmed)

	category, err := taxonomy.Classify(canonical)
	if err != nil {
		hintCategory, ok := types.ParseCategory(hint)
		if !ok {
			return types.NormalizedSkill{}, err
		}
		category = hintCategory
	}

	skill := types.NormalizedSkill{
		CanonicalName: canonical,
		Category:      category,
	}
	if canonical != trimmed {
		skill.AliasOf = trimmed
	}
	return skill, nil
}

// canonicalName resolves the display spelling for a trimmed mention:
// alias table first, then the canonical-spelling table, else the input as-is.
func canonicalName(trimmed string) string {
	lower := strings.ToLower(trimmed)
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}
	if display, ok := canonicalSpellings[lower]; ok {
		return display
	}
	return trimmed
}
