package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-sync/internal/extraction"
	"github.com/jonathan/skill-sync/internal/merging"
	"github.com/jonathan/skill-sync/internal/types"
)

func TestPrintExtractedSkills(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintExtractedSkills(&extraction.AdaptResult{
		Skills: []types.NormalizedSkill{
			{CanonicalName: "Go", Category: types.CategoryProgramming},
			{CanonicalName: "Docker", Category: types.CategoryTools},
		},
		Skipped: []types.RawSkillMention{
			{Text: "synergy", Reason: "no category matched"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED SKILLS")
	assert.Contains(t, out, "Extracted: 2 skills (1 skipped)")
	assert.Contains(t, out, "Programming & Frameworks:")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "Docker")
	assert.Contains(t, out, "no category matched")
}

func TestPrintExtractedSkills_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExtractedSkills(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExtractedSkills_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	skills := make([]types.NormalizedSkill, 12)
	for i := range skills {
		skills[i] = types.NormalizedSkill{
			CanonicalName: string(rune('A' + i)),
			Category:      types.CategoryProgramming,
		}
	}
	printer.PrintExtractedSkills(&extraction.AdaptResult{Skills: skills})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintMergeResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMergeResult(&types.MergeResult{
		Added: []types.NormalizedSkill{
			{CanonicalName: "Pandas", Category: types.CategoryAIData},
		},
		Skipped: []types.RawSkillMention{
			{Text: "Spark", Reason: "already listed under another category"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "MERGE RESULT")
	assert.Contains(t, out, "+ Pandas (AI & Data Science)")
	assert.Contains(t, out, "- Spark:")
}

func TestPrintMergeResult_NothingAdded(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMergeResult(&types.MergeResult{})
	assert.Contains(t, buf.String(), "No new skills")
}

func TestPrintSectionLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSectionLines([]merging.SectionLine{
		{Label: "Programming & Frameworks", Skills: []string{"Go", "Python"}},
	})

	out := buf.String()
	assert.Contains(t, out, "SKILLS SECTION")
	assert.Contains(t, out, "Programming & Frameworks: Go, Python")
}

func TestPrintBox_LinesFitWidth(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSectionLines([]merging.SectionLine{
		{Label: "Programming & Frameworks", Skills: []string{
			"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
		}},
	})

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		runes := []rune(string(line))
		require.LessOrEqual(t, len(runes), boxWidth, "line %q overflows the box", string(line))
	}
}
