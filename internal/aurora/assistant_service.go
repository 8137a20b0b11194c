package aurora

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aurora-ops/aurora/internal/core/chat"
	"github.com/aurora-ops/aurora/internal/core/command"
	"github.com/aurora-ops/aurora/internal/core/config"
	"github.com/aurora-ops/aurora/internal/core/speech"
)

// AssistantService owns the conversation log and routes operator
// utterances through the interpreter. The caller remains the single
// writer for task and catalog state; this service only applies the task
// outcome to the store and handles the conversational side effects
// (logging the exchange, speaking announced replies).
type AssistantService struct {
	cfg     *config.Config
	tasks   *TaskService
	speaker speech.Speaker
	chatLog *chat.Log
	log     zerolog.Logger
}

// NewAssistantService creates a new AssistantService with an empty
// conversation log at the configured capacity.
func NewAssistantService(cfg *config.Config, tasks *TaskService, speaker speech.Speaker, log zerolog.Logger) *AssistantService {
	return &AssistantService{
		cfg:     cfg,
		tasks:   tasks,
		speaker: speaker,
		chatLog: chat.NewLog(cfg.Assistant.LogCapacity),
		log:     log.With().Str("component", "assistant").Logger(),
	}
}

// Greet appends the opening assistant message and returns it.
func (s *AssistantService) Greet() chat.Message {
	content := fmt.Sprintf(
		"%s online. Ask me to capture priorities, update task status, or transform your raw catalog data for Amazon, Flipkart, Meesho, or Myntra.",
		s.cfg.Assistant.Name,
	)
	m, _ := chat.NewMessage(chat.RoleAssistant, content)
	s.chatLog.Append(m)
	return m
}

// Handle interprets one operator utterance against the given snapshot.
// The user message and the reply are appended to the conversation log,
// the outcome's task list is applied to the store, and announced replies
// are spoken. Catalog state stays with the caller, which applies
// outcome.CatalogRows itself.
func (s *AssistantService) Handle(ctx context.Context, input string, snapshot command.Context) (command.Outcome, error) {
	userMsg, err := chat.NewMessage(chat.RoleUser, input)
	if err != nil {
		return command.Outcome{}, fmt.Errorf("record user message: %w", err)
	}
	s.chatLog.Append(userMsg)

	outcome := command.Interpret(input, snapshot)
	s.chatLog.Append(outcome.Message)

	if err := s.tasks.Replace(ctx, outcome.Tasks); err != nil {
		return command.Outcome{}, fmt.Errorf("apply task outcome: %w", err)
	}

	s.log.Debug().
		Str("input", input).
		Bool("announce", outcome.Announce).
		Msg("command interpreted")

	if outcome.Announce {
		// Audio is best-effort; the reply is already on screen.
		_ = s.speaker.Speak(ctx, outcome.Message.Content)
	}

	return outcome, nil
}

// History returns the retained conversation entries, oldest first.
func (s *AssistantService) History() []chat.Message {
	return s.chatLog.Entries()
}
