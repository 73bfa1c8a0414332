package normalizing

// EmptyMentionError indicates an empty or whitespace-only skill mention.
type EmptyMentionError struct {
	Raw string
}

func (e *EmptyMentionError) Error() string {
	return "empty skill mention"
}
