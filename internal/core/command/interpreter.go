package command

import "strings"

// intent pairs a predicate with its handler. Intents are evaluated in
// declaration order and the first match wins, so shared sub-keywords
// ("task", "listing") resolve by priority rather than ambiguity handling.
type intent struct {
	name   string
	match  func(lowered string) bool
	handle func(raw, lowered string, ctx Context) Outcome
}

// intents is the full priority list. The trailing fallback matches
// everything, which makes Interpret a total function.
var intents = []intent{
	{name: "help", match: matchHelp, handle: handleHelp},
	{name: "add-task", match: matchAddTask, handle: handleAddTask},
	{name: "update-status", match: matchStatusUpdate, handle: handleStatusUpdate},
	{name: "list-tasks", match: matchListTasks, handle: handleListTasks},
	{name: "generate-catalog", match: matchGenerate, handle: handleGenerate},
	{name: "fallback", match: func(string) bool { return true }, handle: handleFallback},
}

// Interpret maps a trimmed, non-empty command string plus the current
// console snapshot to an outcome. It never returns an error: unrecognized
// or malformed input resolves to a valid outcome carrying an explanatory
// reply, because the shell has no separate error path.
func Interpret(input string, ctx Context) Outcome {
	raw := strings.TrimSpace(input)
	lowered := strings.ToLower(raw)

	for _, in := range intents {
		if in.match(lowered) {
			return in.handle(raw, lowered, ctx)
		}
	}

	// Unreachable: the fallback intent always matches.
	return handleFallback(raw, lowered, ctx)
}
