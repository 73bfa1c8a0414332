// Package merging reconciles a resume's existing skill listing with newly
// extracted skills.
package merging

import (
	"fmt"

	"github.com/jonathan/skill-sync/internal/types"
)

// Merge combines incoming skills into a copy of the existing set, per
// category. The existing set is never mutated; the result carries a fresh
// SkillSet.
//
// Rules, per incoming skill in emission order:
//   - Name already present under the same category: dropped, the resume
//     entry stands.
//   - Name already present under a different category: the existing
//     placement wins (it may be deliberate manual curation); the mention is
//     recorded in Skipped.
//   - Name not present anywhere: appended to its category's sequence and
//     recorded in Added.
//
// Merge is additive-only (no category shrinks, no skill is deleted),
// total (no failure modes for well-formed inputs), and idempotent:
// re-merging the same incoming list into the updated set adds nothing.
func Merge(existing *types.SkillSet, incoming []types.NormalizedSkill) *types.MergeResult {
	updated := existing.Clone()
	result := &types.MergeResult{Updated: updated}

	for _, skill := range incoming {
		owner, present := updated.CategoryOf(skill.CanonicalName)
		if present {
			if owner != skill.Category {
				result.Skipped = append(result.Skipped, types.RawSkillMention{
					Text: skill.CanonicalName,
					Reason: fmt.Sprintf("already listed under %q, incoming category %q ignored",
						owner.Label(), skill.Category.Label()),
				})
			}
			continue
		}

		// The clone re-checks the set invariants; a fresh name under a
		// valid category always adds cleanly.
		if err := updated.Add(skill); err != nil {
			result.Skipped = append(result.Skipped, types.RawSkillMention{
				Text:   skill.CanonicalName,
				Reason: err.Error(),
			})
			continue
		}
		result.Added = append(result.Added, skill)
	}

	return result
}
