package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/core/styles"
	"github.com/aurora-ops/aurora/internal/core/task"
	"github.com/aurora-ops/aurora/pkg/iojson"
)

// TaskCmd implements the aurora task command group.
type TaskCmd struct {
	flags *Flags
	app   *aurora.App

	// add flags
	addTitle string

	// list flags
	listStatus string
	listSource string
	listJSON   bool
}

// NewTaskCmd creates a new task command.
func NewTaskCmd(flags *Flags, app *aurora.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task command to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "task",
		Usage: "Manage the task board",
		Description: `Task commands for the seller's board.

The board is session-scoped: each run starts from the configured starter
tasks. Use the interactive console for an ongoing session.

Examples:
  aurora task list                            # list all tasks
  aurora task list --status pending           # filter by status
  aurora task add --title "Pack Meesho orders"
  aurora task complete "pack meesho"          # match by title fragment`,
		Commands: []*cli.Command{
			cmd.listCmd(),
			cmd.addCmd(),
			cmd.statusCmd("complete", "Mark tasks as completed", task.StatusCompleted),
			cmd.statusCmd("start", "Mark tasks as in progress", task.StatusInProgress),
		},
	})

	return app
}

func (cmd *TaskCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List tasks",
		UsageText: "aurora task list [--status <status>] [--source <source>] [--json]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (pending, in-progress, completed)",
				Destination: &cmd.listStatus,
			},
			&cli.StringFlag{
				Name:        "source",
				Usage:       "filter by source (manual, voice, catalog)",
				Destination: &cmd.listSource,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit JSON instead of a styled table",
				Destination: &cmd.listJSON,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *TaskCmd) runList(ctx context.Context, c *cli.Command) error {
	if cmd.listStatus != "" && !task.ValidStatus(task.Status(cmd.listStatus)) {
		return fmt.Errorf("unknown status %q", cmd.listStatus)
	}

	tasks, err := cmd.app.Tasks.List(ctx, task.ListFilter{
		Status: task.Status(cmd.listStatus),
		Source: task.Source(cmd.listSource),
	})
	if err != nil {
		return err
	}

	if cmd.listJSON {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.Root().Writer, styles.SubtleStyle.Render("no tasks"))
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintf(c.Root().Writer, "%s  %s %s\n",
			styles.SubtleStyle.Render(t.ID[:8]),
			t.Title,
			styles.StatusStyle(string(t.Status)).Render("["+string(t.Status)+"]"),
		)
	}
	return nil
}

func (cmd *TaskCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task to the board",
		UsageText: "aurora task add [--title <title>]",
		Description: `Adds a task with Source=manual, like the board form in the console.

When --title is omitted, an interactive prompt opens.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the task",
				Destination: &cmd.addTitle,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *TaskCmd) runAdd(ctx context.Context, c *cli.Command) error {
	title := cmd.addTitle
	if title == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Task title").
					Placeholder("Add a quick task…").
					Value(&title),
			),
		)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	t, err := cmd.app.Tasks.Add(ctx, title, task.SourceManual)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.SuccessStyle.Render("added"), t.Title)
	return nil
}

// statusCmd builds a status-change subcommand. The positional argument is
// a case-insensitive title fragment; every matching task is updated, the
// same bulk semantics the voice command uses.
func (cmd *TaskCmd) statusCmd(name, usage string, status task.Status) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		UsageText: fmt.Sprintf("aurora task %s <title-fragment>", name),
		Action: func(ctx context.Context, c *cli.Command) error {
			fragment := c.Args().First()
			if fragment == "" {
				return fmt.Errorf("a title fragment is required")
			}

			matched, err := updateByFragment(ctx, cmd.app, fragment, status)
			if err != nil {
				return err
			}
			if len(matched) == 0 {
				return fmt.Errorf("no task matches %q", fragment)
			}

			for _, t := range matched {
				fmt.Fprintf(c.Root().Writer, "%s %s\n",
					styles.StatusStyle(string(status)).Render(string(status)), t.Title)
			}
			return nil
		},
	}
}

// updateByFragment applies a status to every task whose title contains the
// fragment, case-insensitively.
func updateByFragment(ctx context.Context, app *aurora.App, fragment string, status task.Status) ([]task.Task, error) {
	tasks, err := app.Tasks.List(ctx, task.ListFilter{})
	if err != nil {
		return nil, err
	}

	var matched []task.Task
	for _, t := range tasks {
		if containsFold(t.Title, fragment) {
			if err := app.Tasks.UpdateStatus(ctx, t.ID, status); err != nil {
				return nil, err
			}
			t.Status = status
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
