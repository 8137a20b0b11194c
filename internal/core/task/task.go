// Package task defines the task board domain model for seller priority tracking.
package task

// Source classifies how a task was created.
type Source string

const (
	// SourceManual is created through the board form or the task CLI.
	SourceManual Source = "manual"
	// SourceVoice is created by a spoken or typed natural-language command.
	SourceVoice Source = "voice"
	// SourceCatalog is created as a follow-up from catalog generation.
	SourceCatalog Source = "catalog"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human-readable form of a status, as shown on the board.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Pending"
	}
}

// Task represents a single item on the seller's board.
// The ID and Title are immutable once created; only Status changes.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
	Source Source `json:"source"`
}
