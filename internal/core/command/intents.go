package command

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/task"
	"github.com/google/uuid"
)

// addTaskTriggers are the phrases that open an add-task command. The
// remainder of the input after the trigger becomes the task title.
var addTaskTriggers = []string{"add task", "create task", "new task"}

// statusTriggers open a status-update command. The fragment between the
// trigger and " as " selects tasks by substring match. Triggers match on
// word boundaries, so "bookmark" does not open one.
var statusTriggers = []string{"mark task", "update task", "set task", "mark"}

// statusSynonyms maps spoken status words onto task statuses. The sets
// here are the minimum vocabulary; extending them is additive.
var statusSynonyms = []struct {
	words  []string
	status task.Status
}{
	{[]string{"done", "complete", "completed", "finish", "finished"}, task.StatusCompleted},
	{[]string{"progress", "started", "doing", "working"}, task.StatusInProgress},
	{[]string{"pending", "todo", "to do"}, task.StatusPending},
}

const helpText = `Here's what I can do: say "add task" followed by a title to capture a priority, ` +
	`"mark task <name> as done" (or started, or pending) to update it, "show my tasks" to review the board, ` +
	`and "generate catalog" to turn your raw product data into optimized listings for Amazon, Flipkart, Meesho, or Myntra.`

func matchHelp(lowered string) bool {
	return lowered == "help" || strings.HasPrefix(lowered, "help ") || strings.HasSuffix(lowered, " help")
}

func handleHelp(_, _ string, ctx Context) Outcome {
	return Outcome{
		Tasks:       ctx.Tasks,
		CatalogRows: ctx.CatalogRows,
		Message:     reply(helpText),
		Announce:    true,
	}
}

func matchAddTask(lowered string) bool {
	for _, trigger := range addTaskTriggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}

func handleAddTask(raw, _ string, ctx Context) Outcome {
	title := ""
	for _, trigger := range addTaskTriggers {
		// The trigger is located in raw itself: lowercasing can change
		// rune widths, so offsets into the lowered string do not transfer.
		if _, end := indexFold(raw, trigger); end >= 0 {
			title = strings.TrimSpace(raw[end:])
			break
		}
	}

	if title == "" {
		return Outcome{
			Tasks:       ctx.Tasks,
			CatalogRows: ctx.CatalogRows,
			Message:     reply(`I need a title for that. Try "add task follow up with the courier".`),
			Announce:    true,
		}
	}

	tasks := append(cloneTasks(ctx.Tasks), task.Task{
		ID:     uuid.NewString(),
		Title:  title,
		Status: task.StatusPending,
		Source: task.SourceVoice,
	})

	return Outcome{
		Tasks:       tasks,
		CatalogRows: ctx.CatalogRows,
		Message:     reply(fmt.Sprintf("Added %q to your board.", title)),
		Announce:    true,
	}
}

// indexFold locates the first occurrence of the lowercase ASCII trigger
// in s, comparing rune by rune the way strings.ToLower maps them.
// Returns the byte offsets of the match start and of the byte just past
// it, or (-1, -1).
func indexFold(s, trigger string) (int, int) {
	for start := range s {
		end := start
		matched := 0
		for matched < len(trigger) {
			r, size := utf8.DecodeRuneInString(s[end:])
			if size == 0 || unicode.ToLower(r) != rune(trigger[matched]) {
				matched = -1
				break
			}
			end += size
			matched++
		}
		if matched == len(trigger) {
			return start, end
		}
	}
	return -1, -1
}

// wordIndex returns the byte offset of phrase in s where the match sits
// on word boundaries, or -1. Keeps "mark" from firing inside words like
// "bookmark".
func wordIndex(s, phrase string) int {
	for start := 0; ; {
		i := strings.Index(s[start:], phrase)
		if i < 0 {
			return -1
		}
		i += start

		beforeOK := i == 0 || s[i-1] == ' '
		after := i + len(phrase)
		afterOK := after == len(s) || s[after] == ' '
		if beforeOK && afterOK {
			return i
		}
		start = i + 1
	}
}

func matchStatusUpdate(lowered string) bool {
	for _, trigger := range statusTriggers {
		if wordIndex(lowered, trigger) >= 0 {
			return true
		}
	}
	return false
}

// statusFromWord resolves a spoken status phrase against the synonym sets.
func statusFromWord(phrase string) (task.Status, bool) {
	phrase = strings.TrimSpace(phrase)
	for _, set := range statusSynonyms {
		for _, w := range set.words {
			if strings.Contains(phrase, w) {
				return set.status, true
			}
		}
	}
	return "", false
}

func handleStatusUpdate(_, lowered string, ctx Context) Outcome {
	remainder := ""
	for _, trigger := range statusTriggers {
		if idx := wordIndex(lowered, trigger); idx >= 0 {
			remainder = strings.TrimSpace(lowered[idx+len(trigger):])
			break
		}
	}

	sep := strings.LastIndex(remainder, " as ")
	if sep < 0 {
		return Outcome{
			Tasks:       ctx.Tasks,
			CatalogRows: ctx.CatalogRows,
			Message:     reply(`Tell me the task and the status, like "mark task pack orders as done".`),
			Announce:    true,
		}
	}

	fragment := strings.TrimSpace(remainder[:sep])
	status, ok := statusFromWord(remainder[sep+len(" as "):])
	if !ok || fragment == "" {
		return Outcome{
			Tasks:       ctx.Tasks,
			CatalogRows: ctx.CatalogRows,
			Message:     reply(`I can set a task to pending, in progress, or completed. Try "mark task pack orders as done".`),
			Announce:    true,
		}
	}

	// Bulk update: every task whose title contains the fragment changes,
	// not just the first match.
	tasks := cloneTasks(ctx.Tasks)
	var updated []string
	for i := range tasks {
		if strings.Contains(strings.ToLower(tasks[i].Title), fragment) {
			tasks[i].Status = status
			updated = append(updated, fmt.Sprintf("%q", tasks[i].Title))
		}
	}

	if len(updated) == 0 {
		return Outcome{
			Tasks:       ctx.Tasks,
			CatalogRows: ctx.CatalogRows,
			Message:     reply(fmt.Sprintf("I couldn't find a task matching %q.", fragment)),
			Announce:    true,
		}
	}

	return Outcome{
		Tasks:       tasks,
		CatalogRows: ctx.CatalogRows,
		Message:     reply(fmt.Sprintf("Marked %s as %s.", strings.Join(updated, ", "), status.Label())),
		Announce:    true,
	}
}

func matchListTasks(lowered string) bool {
	return (strings.Contains(lowered, "show") || strings.Contains(lowered, "list")) &&
		strings.Contains(lowered, "task")
}

// handleListTasks is informational, so the reply is not announced: reading
// an entire board aloud is hostile in a voice console.
func handleListTasks(_, _ string, ctx Context) Outcome {
	if len(ctx.Tasks) == 0 {
		return Outcome{
			Tasks:       ctx.Tasks,
			CatalogRows: ctx.CatalogRows,
			Message:     reply("Your board is clear. Nothing captured yet."),
			Announce:    false,
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("You have %d task(s): ", len(ctx.Tasks)))
	for i, t := range ctx.Tasks {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fmt.Sprintf("%s (%s)", t.Title, t.Status.Label()))
	}
	b.WriteString(".")

	return Outcome{
		Tasks:       ctx.Tasks,
		CatalogRows: ctx.CatalogRows,
		Message:     reply(b.String()),
		Announce:    false,
	}
}

func matchGenerate(lowered string) bool {
	return strings.Contains(lowered, "generate") &&
		(strings.Contains(lowered, "catalog") || strings.Contains(lowered, "listing"))
}

func handleGenerate(_, _ string, ctx Context) Outcome {
	sheet, err := catalog.ParseSheet(ctx.RawCatalog)
	if err != nil {
		// Prior rows are preserved on failure so a bad paste never wipes
		// a good generation.
		return Outcome{
			Tasks:       ctx.Tasks,
			CatalogRows: ctx.CatalogRows,
			Message:     reply("I couldn't read any products from the raw catalog. Paste rows like: name | sku | price | category | stock | description | tags."),
			Announce:    true,
		}
	}

	rows, err := catalog.Render(sheet.Records, ctx.Marketplace)
	if err != nil {
		return Outcome{
			Tasks:       ctx.Tasks,
			CatalogRows: ctx.CatalogRows,
			Message:     reply(fmt.Sprintf("I couldn't build listings for %s.", ctx.Marketplace)),
			Announce:    true,
		}
	}

	profile, _ := catalog.ProfileFor(ctx.Marketplace)
	return Outcome{
		Tasks:       ctx.Tasks,
		CatalogRows: rows,
		Message:     reply(fmt.Sprintf("Generated %d optimized listing(s) for %s. Preview them below or export the CSV.", len(rows), profile.Name)),
		Announce:    true,
	}
}

func handleFallback(_, _ string, ctx Context) Outcome {
	return Outcome{
		Tasks:       ctx.Tasks,
		CatalogRows: ctx.CatalogRows,
		Message:     reply(`I didn't catch that. Say "help" to hear what I can do.`),
		Announce:    true,
	}
}
