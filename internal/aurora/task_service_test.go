package aurora

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-ops/aurora/internal/core/config"
	"github.com/aurora-ops/aurora/internal/core/task"
	"github.com/aurora-ops/aurora/internal/data/stores"
)

func TestTaskService_Seed(t *testing.T) {
	svc := NewTaskService(stores.NewTaskStore(), zerolog.Nop())
	ctx := context.Background()

	starters := []config.StarterTask{
		{Title: "Reconcile Amazon apparel inventory", Status: "pending"},
		{Title: "Draft Flipkart deal of the day copy", Status: "in-progress"},
	}
	require.NoError(t, svc.Seed(ctx, starters))

	tasks, err := svc.List(ctx, task.ListFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, task.SourceManual, tasks[0].Source)
	assert.Equal(t, task.StatusInProgress, tasks[1].Status)
}

func TestTaskService_Seed_InvalidStarter(t *testing.T) {
	svc := NewTaskService(stores.NewTaskStore(), zerolog.Nop())

	err := svc.Seed(context.Background(), []config.StarterTask{{Title: "x", Status: "archived"}})
	assert.ErrorIs(t, err, task.ErrInvalidStatus)
}

func TestTaskService_AddAndGet(t *testing.T) {
	svc := NewTaskService(stores.NewTaskStore(), zerolog.Nop())
	ctx := context.Background()

	added, err := svc.Add(ctx, "Pack Meesho orders", task.SourceVoice)
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, task.StatusPending, added.Status)

	got, err := svc.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)
}

func TestTaskService_CountCompleted(t *testing.T) {
	svc := NewTaskService(stores.NewTaskStore(), zerolog.Nop())
	ctx := context.Background()

	a, err := svc.Add(ctx, "a", task.SourceManual)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "b", task.SourceManual)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, a.ID, task.StatusCompleted))

	n, err := svc.CountCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
