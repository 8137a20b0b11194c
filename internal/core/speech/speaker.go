// Package speech voices announced assistant replies through an external
// text-to-speech command. The console never depends on audio being
// available; a speaker failure is logged and swallowed.
package speech

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aurora-ops/aurora/pkg/executil"
)

// Speaker voices a reply.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// CommandSpeaker shells out to a TTS command (say, espeak, festival)
// with the reply text as the final argument.
type CommandSpeaker struct {
	exec    executil.Executor
	command string
	log     zerolog.Logger
}

// NewCommandSpeaker creates a speaker backed by the given command.
func NewCommandSpeaker(exec executil.Executor, command string, log zerolog.Logger) *CommandSpeaker {
	return &CommandSpeaker{
		exec:    exec,
		command: command,
		log:     log.With().Str("component", "speech").Logger(),
	}
}

// Speak voices the text. Blank text is a no-op.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if _, err := s.exec.Run(ctx, s.command, text); err != nil {
		s.log.Warn().Err(err).Str("command", s.command).Msg("speech command failed")
		return err
	}
	return nil
}

// NoopSpeaker discards all replies. Used when speech is disabled.
type NoopSpeaker struct{}

// Speak does nothing.
func (NoopSpeaker) Speak(context.Context, string) error { return nil }
