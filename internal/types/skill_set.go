package types

import (
	"encoding/json"
	"fmt"
)

// SkillSet is an ordered mapping from Category to a sequence of unique
// NormalizedSkill values. Insertion order is preserved within each category,
// and a canonical name appears in at most one category across the whole set.
type SkillSet struct {
	byCategory map[Category][]NormalizedSkill
	index      map[string]Category // skill key -> owning category
}

// NewSkillSet creates an empty SkillSet.
func NewSkillSet() *SkillSet {
	return &SkillSet{
		byCategory: make(map[Category][]NormalizedSkill),
		index:      make(map[string]Category),
	}
}

// Add appends a skill to its category's sequence. It fails if the category
// is not a member of the closed set, the canonical name is empty, or the
// name is already present anywhere in the set.
func (s *SkillSet) Add(skill NormalizedSkill) error {
	if !skill.Category.IsValid() {
		return fmt.Errorf("invalid category %q for skill %q", skill.Category, skill.CanonicalName)
	}
	key := skill.Key()
	if key == "" {
		return fmt.Errorf("skill has empty canonical name")
	}
	if existing, ok := s.index[key]; ok {
		return fmt.Errorf("skill %q already present under category %q", skill.CanonicalName, existing)
	}
	s.byCategory[skill.Category] = append(s.byCategory[skill.Category], skill)
	s.index[key] = skill.Category
	return nil
}

// Skills returns a copy of the sequence for a category, in insertion order.
func (s *SkillSet) Skills(cat Category) []NormalizedSkill {
	seq := s.byCategory[cat]
	if len(seq) == 0 {
		return nil
	}
	out := make([]NormalizedSkill, len(seq))
	copy(out, seq)
	return out
}

// CategoryOf returns the category that owns a canonical name, if any.
// Lookup is case-insensitive.
func (s *SkillSet) CategoryOf(canonicalName string) (Category, bool) {
	cat, ok := s.index[SkillKey(canonicalName)]
	return cat, ok
}

// Contains reports whether a canonical name is present anywhere in the set.
func (s *SkillSet) Contains(canonicalName string) bool {
	_, ok := s.CategoryOf(canonicalName)
	return ok
}

// Len returns the total number of skills across all categories.
func (s *SkillSet) Len() int {
	return len(s.index)
}

// Clone returns a deep copy of the set. Merge never mutates its input;
// callers get a fresh set back.
func (s *SkillSet) Clone() *SkillSet {
	out := NewSkillSet()
	for _, cat := range Categories() {
		for _, skill := range s.byCategory[cat] {
			// Skills in a valid set always re-add cleanly.
			_ = out.Add(skill)
		}
	}
	return out
}

// skillSetJSON is the wire form of a SkillSet. Named fields keep the
// category order deterministic, which a plain map would not.
type skillSetJSON struct {
	Programming []NormalizedSkill `json:"programming_and_frameworks,omitempty"`
	Tools       []NormalizedSkill `json:"software_development_tools,omitempty"`
	AIData      []NormalizedSkill `json:"ai_and_data_science,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s *SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(skillSetJSON{
		Programming: s.byCategory[CategoryProgramming],
		Tools:       s.byCategory[CategoryTools],
		AIData:      s.byCategory[CategoryAIData],
	})
}

// UnmarshalJSON implements json.Unmarshaler. The invariants (unique names,
// valid categories) are enforced during rebuild.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var wire skillSetJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	rebuilt := NewSkillSet()
	sections := []struct {
		cat    Category
		skills []NormalizedSkill
	}{
		{CategoryProgramming, wire.Programming},
		{CategoryTools, wire.Tools},
		{CategoryAIData, wire.AIData},
	}
	for _, section := range sections {
		for _, skill := range section.skills {
			skill.Category = section.cat
			if err := rebuilt.Add(skill); err != nil {
				return fmt.Errorf("invalid skill set: %w", err)
			}
		}
	}
	*s = *rebuilt
	return nil
}

// MergeResult is the outcome of reconciling a resume's existing skills with
// newly extracted ones. Added records what changed for observability;
// Skipped records mentions that were dropped rather than merged.
type MergeResult struct {
	Updated *SkillSet         `json:"updated"`
	Added   []NormalizedSkill `json:"added"`
	Skipped []RawSkillMention `json:"skipped"`
}
