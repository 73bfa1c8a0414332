package document

import (
	"strings"

	"github.com/jonathan/skill-sync/internal/merging"
)

// RewriteSkillSection replaces the body of the SKILLS section with the
// rendered per-category lines, preserving every line outside the section
// and any unrecognized lines inside it. The heading itself is kept as-is.
func RewriteSkillSection(doc string, rendered []merging.SectionLine) (string, error) {
	lines := splitLines(doc)
	start, end, err := sectionBounds(lines)
	if err != nil {
		return "", err
	}

	section, err := ParseSkillSection(doc)
	if err != nil {
		return "", err
	}

	body := make([]string, 0, len(rendered)+len(section.ExtraLines))
	for _, line := range rendered {
		body = append(body, formatSectionLine(line))
	}
	body = append(body, section.ExtraLines...)

	out := make([]string, 0, len(lines)+len(body))
	out = append(out, lines[:start+1]...)
	out = append(out, body...)
	out = append(out, lines[end:]...)

	return strings.Join(out, "\n"), nil
}

// formatSectionLine renders one category line the way the resume lists
// skills: a bold-style label prefix followed by a comma-separated listing.
func formatSectionLine(line merging.SectionLine) string {
	return line.Label + ": " + strings.Join(line.Skills, ", ")
}
