package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-ops/aurora/pkg/executil"
)

func TestCommandSpeaker_Speak(t *testing.T) {
	exec := &executil.RecordingExecutor{}
	speaker := NewCommandSpeaker(exec, "espeak", zerolog.Nop())

	require.NoError(t, speaker.Speak(context.Background(), "Added your task."))

	require.Len(t, exec.Commands, 1)
	assert.Equal(t, "espeak", exec.Commands[0].Cmd)
	assert.Equal(t, []string{"Added your task."}, exec.Commands[0].Args)
}

func TestCommandSpeaker_BlankTextIsNoop(t *testing.T) {
	exec := &executil.RecordingExecutor{}
	speaker := NewCommandSpeaker(exec, "say", zerolog.Nop())

	require.NoError(t, speaker.Speak(context.Background(), "   "))
	assert.Empty(t, exec.Commands)
}

func TestCommandSpeaker_PropagatesError(t *testing.T) {
	boom := errors.New("no audio device")
	exec := &executil.RecordingExecutor{Errors: map[string]error{"say": boom}}
	speaker := NewCommandSpeaker(exec, "say", zerolog.Nop())

	err := speaker.Speak(context.Background(), "hello")
	assert.ErrorIs(t, err, boom)
}

func TestNoopSpeaker(t *testing.T) {
	assert.NoError(t, NoopSpeaker{}.Speak(context.Background(), "anything"))
}
