package task

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("task not found")
	// ErrEmptyTitle is returned when a task is created without a title.
	ErrEmptyTitle = errors.New("task title is required")
	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid task status")
)

// ListFilter controls which tasks are returned by List.
type ListFilter struct {
	Status Status // empty means all statuses
	Source Source // empty means all sources
}

// Store defines the interface for task persistence.
// Tasks are never deleted; identity is stable for the process lifetime.
type Store interface {
	// Create persists a new task. The store populates ID and Status if
	// not already set. Returns ErrEmptyTitle if the title is blank.
	Create(ctx context.Context, t *Task) error

	// Get returns a single task by ID.
	// Returns ErrNotFound if the task does not exist.
	Get(ctx context.Context, id string) (Task, error)

	// List returns tasks matching the filter, in insertion order.
	List(ctx context.Context, filter ListFilter) ([]Task, error)

	// UpdateStatus changes the status of a task.
	// Returns ErrNotFound if the task does not exist.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Replace swaps the entire task list for a new one. Used by the
	// console shell to apply an interpreter outcome wholesale.
	Replace(ctx context.Context, tasks []Task) error

	// CountByStatus returns the number of tasks in the given status.
	CountByStatus(ctx context.Context, status Status) (int, error)
}
