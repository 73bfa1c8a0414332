package taxonomy

import "fmt"

// UnclassifiableSkillError indicates that a canonical name matched no
// membership table. It carries the attempted name for diagnostics.
type UnclassifiableSkillError struct {
	Name string
}

func (e *UnclassifiableSkillError) Error() string {
	return fmt.Sprintf("unclassifiable skill: %q matches no category table", e.Name)
}
