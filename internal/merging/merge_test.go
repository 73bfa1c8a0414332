package merging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-sync/internal/types"
)

func buildSet(t *testing.T, skills ...types.NormalizedSkill) *types.SkillSet {
	t.Helper()
	set := types.NewSkillSet()
	for _, skill := range skills {
		require.NoError(t, set.Add(skill))
	}
	return set
}

func TestMerge_AddsNewSkillsPerCategory(t *testing.T) {
	existing := buildSet(t,
		types.NormalizedSkill{CanonicalName: "Python", Category: types.CategoryProgramming},
	)
	incoming := []types.NormalizedSkill{
		{CanonicalName: "Go", Category: types.CategoryProgramming},
		{CanonicalName: "Docker", Category: types.CategoryTools},
		{CanonicalName: "Pandas", Category: types.CategoryAIData},
	}

	result := Merge(existing, incoming)

	require.Len(t, result.Added, 3)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 4, result.Updated.Len())

	programming := result.Updated.Skills(types.CategoryProgramming)
	require.Len(t, programming, 2)
	assert.Equal(t, "Python", programming[0].CanonicalName, "existing entries keep position")
	assert.Equal(t, "Go", programming[1].CanonicalName, "new entries append")
}

func TestMerge_SameCategoryDuplicateDropped(t *testing.T) {
	existing := buildSet(t,
		types.NormalizedSkill{CanonicalName: "Docker", Category: types.CategoryTools},
	)
	incoming := []types.NormalizedSkill{
		{CanonicalName: "docker", Category: types.CategoryTools},
		{CanonicalName: "Kubernetes", Category: types.CategoryTools},
	}

	result := Merge(existing, incoming)

	require.Len(t, result.Added, 1)
	assert.Equal(t, "Kubernetes", result.Added[0].CanonicalName)
	assert.Empty(t, result.Skipped, "same-category duplicates are dropped silently")

	tools := result.Updated.Skills(types.CategoryTools)
	require.Len(t, tools, 2)
	assert.Equal(t, "Docker", tools[0].CanonicalName, "resume spelling stands")
}

func TestMerge_CrossCategoryConflictSkipped(t *testing.T) {
	existing := buildSet(t,
		types.NormalizedSkill{CanonicalName: "Spark", Category: types.CategoryTools},
	)
	incoming := []types.NormalizedSkill{
		{CanonicalName: "Spark", Category: types.CategoryAIData},
	}

	result := Merge(existing, incoming)

	assert.Empty(t, result.Added)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Spark", result.Skipped[0].Text)
	assert.NotEmpty(t, result.Skipped[0].Reason)

	owner, ok := result.Updated.CategoryOf("Spark")
	require.True(t, ok)
	assert.Equal(t, types.CategoryTools, owner, "existing placement wins")
	assert.Empty(t, result.Updated.Skills(types.CategoryAIData))
}

func TestMerge_Idempotent(t *testing.T) {
	existing := buildSet(t,
		types.NormalizedSkill{CanonicalName: "Go", Category: types.CategoryProgramming},
	)
	incoming := []types.NormalizedSkill{
		{CanonicalName: "Rust", Category: types.CategoryProgramming},
		{CanonicalName: "Terraform", Category: types.CategoryTools},
	}

	first := Merge(existing, incoming)
	require.Len(t, first.Added, 2)

	second := Merge(first.Updated, incoming)
	assert.Empty(t, second.Added, "re-merging the same list adds nothing")
	assert.Equal(t, first.Updated.Len(), second.Updated.Len())
}

func TestMerge_NeverMutatesInput(t *testing.T) {
	existing := buildSet(t,
		types.NormalizedSkill{CanonicalName: "Go", Category: types.CategoryProgramming},
	)
	incoming := []types.NormalizedSkill{
		{CanonicalName: "Rust", Category: types.CategoryProgramming},
	}

	result := Merge(existing, incoming)

	assert.Equal(t, 1, existing.Len())
	assert.False(t, existing.Contains("Rust"))
	assert.Equal(t, 2, result.Updated.Len())
}

func TestMerge_AdditiveOnly(t *testing.T) {
	existing := buildSet(t,
		types.NormalizedSkill{CanonicalName: "Go", Category: types.CategoryProgramming},
		types.NormalizedSkill{CanonicalName: "Docker", Category: types.CategoryTools},
		types.NormalizedSkill{CanonicalName: "Pandas", Category: types.CategoryAIData},
	)

	result := Merge(existing, nil)

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Skipped)
	for _, cat := range types.Categories() {
		assert.Len(t, result.Updated.Skills(cat), len(existing.Skills(cat)),
			"no category shrinks")
	}
}

func TestMerge_IncomingOrderPreserved(t *testing.T) {
	existing := types.NewSkillSet()
	incoming := []types.NormalizedSkill{
		{CanonicalName: "Kafka", Category: types.CategoryTools},
		{CanonicalName: "Redis", Category: types.CategoryTools},
		{CanonicalName: "Nginx", Category: types.CategoryTools},
	}

	result := Merge(existing, incoming)

	tools := result.Updated.Skills(types.CategoryTools)
	require.Len(t, tools, 3)
	assert.Equal(t, "Kafka", tools[0].CanonicalName)
	assert.Equal(t, "Redis", tools[1].CanonicalName)
	assert.Equal(t, "Nginx", tools[2].CanonicalName)
}
