package aurora

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-ops/aurora/internal/core/chat"
	"github.com/aurora-ops/aurora/internal/core/command"
	"github.com/aurora-ops/aurora/internal/core/config"
	"github.com/aurora-ops/aurora/internal/core/speech"
	"github.com/aurora-ops/aurora/internal/core/task"
	"github.com/aurora-ops/aurora/internal/data/stores"
	"github.com/aurora-ops/aurora/pkg/executil"
)

func testApp(t *testing.T, speaker speech.Speaker) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	return NewApp(&cfg, stores.NewTaskStore(), speaker, zerolog.Nop())
}

func seedStarters(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, app.Tasks.Seed(context.Background(), app.Config.Tasks.Starters))
}

func TestAssistant_Greet(t *testing.T) {
	app := testApp(t, speech.NoopSpeaker{})

	m := app.Assistant.Greet()

	assert.Equal(t, chat.RoleAssistant, m.Role)
	assert.Contains(t, m.Content, "Aurora online")
	require.Len(t, app.Assistant.History(), 1)
}

func TestAssistant_HandleAddTask(t *testing.T) {
	app := testApp(t, speech.NoopSpeaker{})
	seedStarters(t, app)
	ctx := context.Background()

	snapshot, err := app.Tasks.List(ctx, task.ListFilter{})
	require.NoError(t, err)

	outcome, err := app.Assistant.Handle(ctx, "add task restock bestsellers", command.Context{Tasks: snapshot})
	require.NoError(t, err)

	assert.True(t, outcome.Announce)

	// the outcome was applied to the store
	after, err := app.Tasks.List(ctx, task.ListFilter{})
	require.NoError(t, err)
	require.Len(t, after, 3)
	assert.Equal(t, "restock bestsellers", after[2].Title)
	assert.Equal(t, task.SourceVoice, after[2].Source)

	// both sides of the exchange are in the log
	history := app.Assistant.History()
	require.Len(t, history, 2)
	assert.Equal(t, chat.RoleUser, history[0].Role)
	assert.Equal(t, "add task restock bestsellers", history[0].Content)
	assert.Equal(t, chat.RoleAssistant, history[1].Role)
}

func TestAssistant_AnnouncedReplyIsSpoken(t *testing.T) {
	exec := &executil.RecordingExecutor{}
	speaker := speech.NewCommandSpeaker(exec, "espeak", zerolog.Nop())
	app := testApp(t, speaker)

	_, err := app.Assistant.Handle(context.Background(), "help", command.Context{})
	require.NoError(t, err)

	require.Len(t, exec.Commands, 1)
	assert.Equal(t, "espeak", exec.Commands[0].Cmd)
	require.Len(t, exec.Commands[0].Args, 1)
	assert.Contains(t, exec.Commands[0].Args[0], "add task")
}

func TestAssistant_QuietReplyIsNotSpoken(t *testing.T) {
	exec := &executil.RecordingExecutor{}
	speaker := speech.NewCommandSpeaker(exec, "espeak", zerolog.Nop())
	app := testApp(t, speaker)

	outcome, err := app.Assistant.Handle(context.Background(), "show my tasks", command.Context{})
	require.NoError(t, err)

	assert.False(t, outcome.Announce)
	assert.Empty(t, exec.Commands)
}

func TestAssistant_HistoryIsBounded(t *testing.T) {
	app := testApp(t, speech.NoopSpeaker{})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := app.Assistant.Handle(ctx, fmt.Sprintf("add task chore %d", i), command.Context{})
		require.NoError(t, err)
	}

	history := app.Assistant.History()
	assert.Len(t, history, app.Config.Assistant.LogCapacity)
}

func TestAssistant_EmptyInputRejected(t *testing.T) {
	app := testApp(t, speech.NoopSpeaker{})

	_, err := app.Assistant.Handle(context.Background(), "", command.Context{})
	assert.Error(t, err) // empty content cannot be logged as a user message
}
