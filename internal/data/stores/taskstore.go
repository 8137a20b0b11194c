// Package stores contains Store implementations for the core domain
// interfaces. All state is in-memory and lost on exit: the console is a
// single-operator session tool, not a system of record.
package stores

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aurora-ops/aurora/internal/core/task"
)

// TaskStore implements task.Store with an in-memory slice.
// Insertion order is preserved; tasks are never deleted.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []task.Task
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Create persists a new task. Populates ID and Status if not already set.
func (s *TaskStore) Create(_ context.Context, t *task.Task) error {
	if t.Title == "" {
		return task.ErrEmptyTitle
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = task.StatusPending
	}
	if !task.ValidStatus(t.Status) {
		return task.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, *t)
	return nil
}

// Get returns a single task by ID.
func (s *TaskStore) Get(_ context.Context, id string) (task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, task.ErrNotFound
}

// List returns tasks matching the filter, in insertion order.
func (s *TaskStore) List(_ context.Context, filter task.ListFilter) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Source != "" && t.Source != filter.Source {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// UpdateStatus changes the status of a task.
func (s *TaskStore) UpdateStatus(_ context.Context, id string, status task.Status) error {
	if !task.ValidStatus(status) {
		return task.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			return nil
		}
	}
	return task.ErrNotFound
}

// Replace swaps the entire task list for a new one.
func (s *TaskStore) Replace(_ context.Context, tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]task.Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}

// CountByStatus returns the number of tasks in the given status.
func (s *TaskStore) CountByStatus(_ context.Context, status task.Status) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}
