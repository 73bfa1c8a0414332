package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-sync/internal/merging"
	"github.com/jonathan/skill-sync/internal/types"
)

func renderedLines() []merging.SectionLine {
	return []merging.SectionLine{
		{Category: types.CategoryProgramming, Label: "Programming & Frameworks", Skills: []string{"Python", "Go", "Rust"}},
		{Category: types.CategoryTools, Label: "Software Development", Skills: []string{"Docker", "Kubernetes"}},
		{Category: types.CategoryAIData, Label: "AI & Data Science", Skills: []string{"Pandas"}},
	}
}

func TestRewriteSkillSection_ReplacesBody(t *testing.T) {
	out, err := RewriteSkillSection(sampleResume, renderedLines())
	require.NoError(t, err)

	assert.Contains(t, out, "Programming & Frameworks: Python, Go, Rust")
	assert.Contains(t, out, "Software Development: Docker, Kubernetes")
	assert.Contains(t, out, "AI & Data Science: Pandas")
}

func TestRewriteSkillSection_PreservesSurroundingContent(t *testing.T) {
	out, err := RewriteSkillSection(sampleResume, renderedLines())
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "EXPERIENCE")
	assert.Contains(t, out, "Acme Corp, Software Engineer")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "State University")
	assert.Contains(t, out, "SKILLS", "heading stays in place")
}

func TestRewriteSkillSection_PreservesExtraLines(t *testing.T) {
	out, err := RewriteSkillSection(sampleResume, renderedLines())
	require.NoError(t, err)

	assert.Contains(t, out, "Certifications: AWS SAA")
}

func TestRewriteSkillSection_SectionStructure(t *testing.T) {
	out, err := RewriteSkillSection(sampleResume, renderedLines())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	idx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "SKILLS" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	require.True(t, len(lines) > idx+4)
	assert.True(t, strings.HasPrefix(lines[idx+1], "Programming & Frameworks:"))
	assert.True(t, strings.HasPrefix(lines[idx+2], "Software Development:"))
	assert.True(t, strings.HasPrefix(lines[idx+3], "AI & Data Science:"))
	assert.Equal(t, "Certifications: AWS SAA", lines[idx+4])
}

func TestRewriteSkillSection_RoundTripStable(t *testing.T) {
	once, err := RewriteSkillSection(sampleResume, renderedLines())
	require.NoError(t, err)

	twice, err := RewriteSkillSection(once, renderedLines())
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestRewriteSkillSection_MissingHeading(t *testing.T) {
	_, err := RewriteSkillSection("EXPERIENCE\nAcme Corp\n", renderedLines())
	var nerr *SectionNotFoundError
	require.True(t, errors.As(err, &nerr))
}
