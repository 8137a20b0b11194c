package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/command"
	"github.com/aurora-ops/aurora/internal/core/styles"
	"github.com/aurora-ops/aurora/internal/core/task"
)

// SayCmd implements one-shot command interpretation: the same engine the
// console uses, run once against a fresh session.
type SayCmd struct {
	flags *Flags
	app   *aurora.App

	reader      catalogReader
	marketplace string
	outPath     string
	rich        bool
}

// catalogReader lazily reads an optional raw-catalog file. Unlike
// iojson.TextReader it never falls back to stdin: stdin absence is the
// normal case here.
type catalogReader struct {
	path string
}

func (r *catalogReader) flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "catalog",
		Usage:       "path to a raw catalog sheet to make available to the command",
		Destination: &r.path,
	}
}

// NewSayCmd creates a new say command.
func NewSayCmd(flags *Flags, app *aurora.App) *SayCmd {
	return &SayCmd{flags: flags, app: app}
}

// Register adds the say command to the application.
func (cmd *SayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "say",
		Usage:     "Interpret a single natural-language command",
		UsageText: `aurora say "<command>" [--catalog <file>] [--marketplace <key>]`,
		Description: `Runs one command through the interpreter and prints the reply.

The session starts from the configured starter tasks, so status commands
have something to act on. Pipe a transcribed utterance in, or quote it:

  aurora say "add task follow up with PDP designers"
  aurora say "mark task draft flipkart deal of the day copy as complete"
  aurora say "generate catalog" --catalog products.txt -m meesho`,
		Flags: []cli.Flag{
			cmd.reader.flag(),
			&cli.StringFlag{
				Name:        "marketplace",
				Aliases:     []string{"m"},
				Usage:       "selected marketplace for catalog commands",
				Destination: &cmd.marketplace,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "write generated rows as CSV to this path",
				Destination: &cmd.outPath,
			},
			&cli.BoolFlag{
				Name:        "rich",
				Usage:       "render the reply as styled markdown",
				Destination: &cmd.rich,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *SayCmd) run(ctx context.Context, c *cli.Command) error {
	input := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if input == "" {
		return fmt.Errorf("nothing to interpret; quote a command after 'say'")
	}

	m := catalog.Marketplace(cmd.app.Config.Catalog.DefaultMarketplace)
	if cmd.marketplace != "" {
		var err error
		if m, err = catalog.ParseMarketplace(cmd.marketplace); err != nil {
			return err
		}
	}

	rawCatalog := ""
	if cmd.reader.path != "" {
		data, err := readFile(cmd.reader.path)
		if err != nil {
			return err
		}
		rawCatalog = data
	}

	tasks, err := cmd.app.Tasks.List(ctx, task.ListFilter{})
	if err != nil {
		return err
	}

	outcome, err := cmd.app.Assistant.Handle(ctx, input, command.Context{
		Tasks:       tasks,
		RawCatalog:  rawCatalog,
		Marketplace: m,
	})
	if err != nil {
		return err
	}

	reply := outcome.Message.Content
	if cmd.rich {
		reply = renderRich(reply)
	}
	fmt.Fprintf(c.Root().Writer, "%s %s\n",
		styles.AssistantStyle.Render(cmd.app.Config.Assistant.Name+":"),
		reply,
	)

	if len(outcome.CatalogRows) > 0 && cmd.outPath != "" {
		path, err := cmd.app.Catalog.WriteExport(outcome.CatalogRows, m, cmd.outPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.SubtleStyle.Render("exported"), path)
	}

	return nil
}

// renderRich passes the reply through glamour. Failures fall back to the
// plain reply.
func renderRich(reply string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return reply
	}
	out, err := renderer.Render(reply)
	if err != nil {
		return reply
	}
	return strings.TrimRight(out, "\n")
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read catalog sheet: %w", err)
	}
	return string(data), nil
}
