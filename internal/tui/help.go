package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/aurora-ops/aurora/internal/core/styles"
)

const helpMarkdown = `# Aurora console

Speak or type natural commands; Aurora keeps the board and the catalog
in sync.

## Commands

- ` + "`add task <title>`" + ` — capture a priority
- ` + "`mark task <name> as done`" + ` — also *started*, *pending*
- ` + "`show my tasks`" + ` — review the board
- ` + "`generate catalog`" + ` — build listings for the selected channel
- ` + "`help`" + ` — hear the capability summary

## Quick prompts

Try: *Add task follow up with PDP designers* ·
*Mark task draft Flipkart deal of the day copy as complete* ·
*Show my tasks* · *Generate listing sheet* · *Help*

## Keys

| Key | Action |
|-----|--------|
| tab | switch focus between input and board |
| p / i / c | set selected task pending / in progress / completed |
| ctrl+n | cycle marketplace (clears generated rows) |
| m | cycle marketplace from the board |
| ctrl+l | load the sample catalog sheet |
| ctrl+g | generate listings |
| ctrl+e | export CSV |

Raw catalog rows are pipe-separated:
` + "`name | sku | price | category | stock | description | tags`" + `
with semicolon-separated tags.

*Press any key to close.*
`

// helpView renders the help screen through glamour. Rendering failures
// fall back to the raw markdown; help must never be unreachable.
func (m Model) helpView() string {
	width := m.width - 4
	if width > 100 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return styles.PanelStyle.Width(m.width - 2).Render(out)
}
