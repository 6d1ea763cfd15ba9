package domain

// ChangeKind identifies the store operation that produced a notification round.
type ChangeKind string

const (
	ChangeProjectAdded ChangeKind = "project_added"
	ChangeProjectMoved ChangeKind = "project_moved"
)
