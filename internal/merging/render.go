package merging

import "github.com/jonathan/skill-sync/internal/types"

// SectionLine is one per-category line of the skills section, ready for a
// document-writing collaborator to place into whatever container the target
// format uses. This is the sole coupling point to the document layer:
// locating the section, mapping labels to visual headings, and preserving
// style are the document layer's concern.
type SectionLine struct {
	Category types.Category `json:"category"`
	Label    string         `json:"label"`
	Skills   []string       `json:"skills"`
}

// RenderForWrite flattens a SkillSet to its display strings, in order, per
// category. All categories are emitted in their fixed order, including
// empty ones, so the document layer always writes a complete section.
func RenderForWrite(set *types.SkillSet) []SectionLine {
	lines := make([]SectionLine, 0, len(types.Categories()))
	for _, cat := range types.Categories() {
		skills := set.Skills(cat)
		names := make([]string, 0, len(skills))
		for _, skill := range skills {
			names = append(names, skill.CanonicalName)
		}
		lines = append(lines, SectionLine{
			Category: cat,
			Label:    cat.Label(),
			Skills:   names,
		})
	}
	return lines
}
