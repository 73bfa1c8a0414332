package types

import "strings"

// RawSkillMention is one unvalidated occurrence of a skill name, as emitted
// by the extraction step. Mentions that fail normalization or classification
// are carried in skipped lists for diagnostics; everything else is discarded
// after normalization.
type RawSkillMention struct {
	Text   string `json:"text"`
	Reason string `json:"reason,omitempty"`
}

// NormalizedSkill is a skill mention after alias folding, canonical-spelling
// lookup, and classification. Immutable once created.
type NormalizedSkill struct {
	CanonicalName string   `json:"canonical_name"`
	Category      Category `json:"category"`
	// AliasOf records the raw surface form that was folded into the
	// canonical name. Diagnostics only; not part of equality.
	AliasOf string `json:"alias_of,omitempty"`
}

// Key returns the comparison key for the skill. Two NormalizedSkill values
// are equal iff their keys match: canonical names compare case-insensitively
// after trimming.
func (s NormalizedSkill) Key() string {
	return SkillKey(s.CanonicalName)
}

// SkillKey returns the case-insensitive comparison key for a canonical name.
func SkillKey(canonicalName string) string {
	return strings.ToLower(strings.TrimSpace(canonicalName))
}
