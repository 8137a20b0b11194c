package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/tui"
)

// ConsoleCmd runs the interactive console TUI.
type ConsoleCmd struct {
	flags *Flags
	app   *aurora.App
}

// NewConsoleCmd creates a new console command.
func NewConsoleCmd(flags *Flags, app *aurora.App) *ConsoleCmd {
	return &ConsoleCmd{flags: flags, app: app}
}

// Register adds the console command to the application.
func (cmd *ConsoleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "console",
		Usage:       "Open the interactive command console",
		UsageText:   "aurora console",
		Description: "The console is also the default when aurora runs with no arguments.",
		Action:      cmd.run,
	})
	return app
}

// Run executes the console. Exported for use as the default command.
func (cmd *ConsoleCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ConsoleCmd) run(_ context.Context, _ *cli.Command) error {
	p := tea.NewProgram(tui.New(cmd.app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
