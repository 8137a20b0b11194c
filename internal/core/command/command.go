// Package command interprets free-text operator commands against a
// snapshot of console state. Interpretation is priority-ordered keyword
// matching: the command vocabulary is small and fixed, and users learn it
// from the help reply.
package command

import (
	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/chat"
	"github.com/aurora-ops/aurora/internal/core/task"
)

// Context is a read-only snapshot of the console state passed in by the
// shell. The interpreter never mutates it; outcomes carry copied state.
type Context struct {
	Tasks       []task.Task
	RawCatalog  string
	CatalogRows []catalog.OutputRow
	Marketplace catalog.Marketplace
}

// Outcome is the structured result of interpreting one command. The shell
// applies Tasks and CatalogRows wholesale and appends Message to the
// conversation log; Announce marks replies that should be spoken aloud.
type Outcome struct {
	Tasks       []task.Task
	CatalogRows []catalog.OutputRow
	Message     chat.Message
	Announce    bool
}

// reply builds an assistant message. Handlers never produce empty content,
// so construction cannot fail.
func reply(content string) chat.Message {
	m, _ := chat.NewMessage(chat.RoleAssistant, content)
	return m
}

// cloneTasks copies the task snapshot so handlers can modify it without
// touching the caller's slice.
func cloneTasks(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	return out
}
