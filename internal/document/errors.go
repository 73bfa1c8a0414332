package document

import "fmt"

// SectionNotFoundError indicates the document has no skills heading to
// anchor parsing or rewriting on.
type SectionNotFoundError struct {
	Heading string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("could not find %s heading in document", e.Heading)
}
