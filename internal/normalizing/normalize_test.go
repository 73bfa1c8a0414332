package normalizing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-sync/internal/taxonomy"
	"github.com/jonathan/skill-sync/internal/types"
)

func TestNormalize_EquivalentFormsConverge(t *testing.T) {
	// "JavaScript", "javascript", and " JS " all mean the same skill and
	// must normalize to a single canonical name.
	for _, input := range []string{"JavaScript", "javascript", " JS "} {
		skill, err := Normalize(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "JavaScript", skill.CanonicalName)
		assert.Equal(t, types.CategoryProgramming, skill.Category)
	}
}

func TestNormalize_AliasFolding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"k8s", "Kubernetes"},
		{"golang", "Go"},
		{"postgres", "PostgreSQL"},
		{"sklearn", "scikit-learn"},
		{"node", "Node.js"},
		{"ML", "Machine Learning"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			skill, err := Normalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, skill.CanonicalName)
			assert.Equal(t, tc.input, skill.AliasOf)
		})
	}
}

func TestNormalize_CanonicalSpelling(t *testing.T) {
	skill, err := Normalize("PYTHON")
	require.NoError(t, err)
	assert.Equal(t, "Python", skill.CanonicalName)
	assert.Equal(t, "PYTHON", skill.AliasOf)

	// Input already in canonical form carries no alias record.
	skill, err = Normalize("Python")
	require.NoError(t, err)
	assert.Equal(t, "Python", skill.CanonicalName)
	assert.Empty(t, skill.AliasOf)
}

func TestNormalize_UnknownTermKeepsInputCasing(t *testing.T) {
	skill, err := Normalize("  Data Analysis Frameworks  ")
	require.NoError(t, err)
	assert.Equal(t, "Data Analysis Frameworks", skill.CanonicalName)
	assert.Empty(t, skill.AliasOf)
}

func TestNormalize_Deterministic(t *testing.T) {
	first, err := Normalize(" JS ")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Normalize(" JS ")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := Normalize(input)
		var eerr *EmptyMentionError
		require.True(t, errors.As(err, &eerr), "input %q", input)
	}
}

func TestNormalize_UnclassifiableInput(t *testing.T) {
	_, err := Normalize("interpretive dance")
	var uerr *taxonomy.UnclassifiableSkillError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "interpretive dance", uerr.Name)
}

func TestNormalizeWithHint_TaxonomyWinsOverHint(t *testing.T) {
	// The hint says "ai" but Docker is a tools-table term; the tables decide.
	skill, err := NormalizeWithHint("Docker", "ai")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryTools, skill.Category)
}

func TestNormalizeWithHint_HintRescuesUnknownName(t *testing.T) {
	skill, err := NormalizeWithHint("Backstage", "development")
	require.NoError(t, err)
	assert.Equal(t, "Backstage", skill.CanonicalName)
	assert.Equal(t, types.CategoryTools, skill.Category)
}

func TestNormalizeWithHint_InvalidHintStillFails(t *testing.T) {
	_, err := NormalizeWithHint("Backstage", "miscellaneous")
	var uerr *taxonomy.UnclassifiableSkillError
	require.True(t, errors.As(err, &uerr))
}
