package taxonomy

import (
	"strings"

	"github.com/jonathan/skill-sync/internal/types"
)

// Classify assigns a canonical skill name to a category by consulting the
// membership tables in priority order. The first matching table wins; exact
// terms are checked before substring patterns within each table. Names that
// match no table fail with UnclassifiableSkillError; whether to drop or
// default-bucket such names is the caller's policy.
func Classify(canonicalName string) (types.Category, error) {
	key := strings.ToLower(strings.TrimSpace(canonicalName))
	if key == "" {
		return "", &UnclassifiableSkillError{Name: canonicalName}
	}

	for _, table := range tables {
		if table.matches(key) {
			return table.category, nil
		}
	}

	return "", &UnclassifiableSkillError{Name: canonicalName}
}
