// Package document reads and rewrites the SKILLS section of a plain-text
// resume, leaving every other line untouched.
package document

import (
	"strings"

	"github.com/jonathan/skill-sync/internal/types"
)

// skillsHeading is the heading text that marks the skills section.
const skillsHeading = "SKILLS"

// SkillSection is the parsed skills section of a document: the existing
// SkillSet plus any lines inside the section that did not parse as a
// recognized category listing. Extra lines are preserved verbatim on
// rewrite.
type SkillSection struct {
	Set        *types.SkillSet
	ExtraLines []string
}

// ParseSkillSection locates the SKILLS heading and reconstructs the
// existing skill listing from the per-category lines that follow it, one
// line per recognized heading label ("Programming & Frameworks: Go, Java").
// Skills keep the category their heading places them under; no
// reclassification happens here.
func ParseSkillSection(doc string) (*SkillSection, error) {
	lines := splitLines(doc)
	start, end, err := sectionBounds(lines)
	if err != nil {
		return nil, err
	}

	section := &SkillSection{Set: types.NewSkillSet()}
	for _, line := range lines[start+1 : end] {
		label, rest, found := strings.Cut(line, ":")
		cat, ok := types.ParseCategory(label)
		if !found || !ok {
			section.ExtraLines = append(section.ExtraLines, line)
			continue
		}
		for _, name := range strings.Split(rest, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			// First occurrence wins on duplicates within the document.
			_ = section.Set.Add(types.NormalizedSkill{
				CanonicalName: name,
				Category:      cat,
			})
		}
	}

	return section, nil
}

// sectionBounds returns the heading line index and the exclusive end index
// of the skills section. The section ends at the first blank line or the
// next heading after the SKILLS heading.
func sectionBounds(lines []string) (start, end int, err error) {
	start = -1
	for i, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), skillsHeading) {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, 0, &SectionNotFoundError{Heading: skillsHeading}
	}

	end = len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" || looksLikeHeading(lines[i]) {
			end = i
			break
		}
	}
	return start, end, nil
}

// looksLikeHeading reports whether a line looks like a section heading:
// short all-caps text, with or without a trailing colon.
func looksLikeHeading(line string) bool {
	txt := strings.TrimSpace(line)
	if txt == "" {
		return false
	}
	txt = strings.TrimSuffix(txt, ":")
	if len(txt) > 40 || txt != strings.ToUpper(txt) {
		return false
	}
	// Require at least one letter so separators like "---" don't count.
	return strings.IndexFunc(txt, isLetter) >= 0
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// splitLines splits a document into lines, normalizing CRLF endings.
func splitLines(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	return strings.Split(doc, "\n")
}
