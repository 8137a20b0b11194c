package aurora

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aurora-ops/aurora/internal/core/config"
	"github.com/aurora-ops/aurora/internal/core/task"
)

// TaskService wraps task.Store with board-level domain logic.
type TaskService struct {
	store task.Store
	log   zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(store task.Store, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
	}
}

// Seed populates the board with configured starter tasks. Starters carry
// Source=manual, matching tasks created through the board form.
func (s *TaskService) Seed(ctx context.Context, starters []config.StarterTask) error {
	for _, st := range starters {
		t := task.Task{
			Title:  st.Title,
			Status: task.Status(st.Status),
			Source: task.SourceManual,
		}
		if err := s.store.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed starter task %q: %w", st.Title, err)
		}
	}
	return nil
}

// Add creates a task with the given title and source.
func (s *TaskService) Add(ctx context.Context, title string, source task.Source) (task.Task, error) {
	t := task.Task{
		Title:  title,
		Status: task.StatusPending,
		Source: source,
	}
	if err := s.store.Create(ctx, &t); err != nil {
		return task.Task{}, fmt.Errorf("add task: %w", err)
	}

	s.log.Debug().Str("id", t.ID).Str("title", t.Title).Msg("task added")
	return t, nil
}

// List returns tasks matching the filter, in insertion order.
func (s *TaskService) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	return s.store.List(ctx, filter)
}

// Get returns a single task by ID.
func (s *TaskService) Get(ctx context.Context, id string) (task.Task, error) {
	return s.store.Get(ctx, id)
}

// UpdateStatus changes the status of a task.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status task.Status) error {
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}

// Replace applies an interpreter outcome's task list wholesale.
func (s *TaskService) Replace(ctx context.Context, tasks []task.Task) error {
	return s.store.Replace(ctx, tasks)
}

// CountCompleted returns the number of completed tasks.
func (s *TaskService) CountCompleted(ctx context.Context) (int, error) {
	return s.store.CountByStatus(ctx, task.StatusCompleted)
}
