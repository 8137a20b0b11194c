package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/core/catalog"
	"github.com/aurora-ops/aurora/internal/core/styles"
	"github.com/aurora-ops/aurora/pkg/iojson"
)

// CatalogCmd implements the aurora catalog command group.
type CatalogCmd struct {
	flags *Flags
	app   *aurora.App

	// generate flags
	reader      iojson.TextReader
	marketplace string
	outPath     string

	// inspect flags
	inspectJSON bool
}

// NewCatalogCmd creates a new catalog command.
func NewCatalogCmd(flags *Flags, app *aurora.App) *CatalogCmd {
	return &CatalogCmd{flags: flags, app: app}
}

// Register adds the catalog command to the application.
func (cmd *CatalogCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "catalog",
		Usage: "Transform raw product data into marketplace listings",
		Description: `Catalog commands turn pasted product intel into channel-ready listings.

Raw input is one product per line:
  name | sku | price | category | stock | description | tags

where tags is semicolon-separated. Uploaded reference templates are
standard CSV with a header row.

Examples:
  aurora catalog generate -f products.txt --marketplace flipkart
  cat products.txt | aurora catalog generate -o flipkart.csv
  aurora catalog inspect "templates/**/*.csv"`,
		Commands: []*cli.Command{
			cmd.generateCmd(),
			cmd.inspectCmd(),
		},
	})

	return app
}

func (cmd *CatalogCmd) generateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate optimized listings and export them as CSV",
		UsageText: "aurora catalog generate [-f <file>] [--marketplace <key>] [-o <path>]",
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.StringFlag{
				Name:        "marketplace",
				Aliases:     []string{"m"},
				Usage:       "target marketplace (amazon, flipkart, meesho, myntra)",
				Destination: &cmd.marketplace,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output CSV path (defaults to <marketplace>-catalog-<epoch-ms>.csv)",
				Destination: &cmd.outPath,
			},
		},
		Action: cmd.runGenerate,
	}
}

func (cmd *CatalogCmd) runGenerate(ctx context.Context, c *cli.Command) error {
	raw, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	m, err := cmd.resolveMarketplace()
	if err != nil {
		return err
	}

	rows, err := cmd.app.Catalog.Generate(raw, m)
	if err != nil {
		if errors.Is(err, catalog.ErrNoRecords) {
			return fmt.Errorf("no parsable products in input; expected pipe-separated rows")
		}
		return err
	}

	path, err := cmd.app.Catalog.WriteExport(rows, m, cmd.outPath)
	if err != nil {
		return err
	}

	profile, _ := catalog.ProfileFor(m)
	fmt.Fprintf(c.Root().Writer, "%s %d listing(s) for %s -> %s\n",
		styles.SuccessStyle.Render("generated"), len(rows), profile.Name, path)
	return nil
}

// resolveMarketplace parses the flag, or opens a picker when the flag is
// omitted, mirroring the channel buttons in the console.
func (cmd *CatalogCmd) resolveMarketplace() (catalog.Marketplace, error) {
	if cmd.marketplace != "" {
		return catalog.ParseMarketplace(cmd.marketplace)
	}

	selected := catalog.Marketplaces[0]
	options := make([]huh.Option[catalog.Marketplace], 0, len(catalog.Marketplaces))
	for _, m := range catalog.Marketplaces {
		profile, _ := catalog.ProfileFor(m)
		options = append(options, huh.NewOption(profile.Name, m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[catalog.Marketplace]().
				Title("Target marketplace").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func (cmd *CatalogCmd) inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Inspect reference marketplace templates",
		UsageText: "aurora catalog inspect <glob> [--json]",
		Description: `Reads every file matching the glob (doublestar patterns like
"templates/**/*.csv" are supported) and reports detected headers and row
counts. Templates are informational only; they are not merged into
generation.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit JSON instead of a styled report",
				Destination: &cmd.inspectJSON,
			},
		},
		Action: cmd.runInspect,
	}
}

func (cmd *CatalogCmd) runInspect(_ context.Context, c *cli.Command) error {
	pattern := c.Args().First()
	if pattern == "" {
		return fmt.Errorf("a file glob is required")
	}

	reports, err := cmd.app.Catalog.Inspect(pattern)
	if err != nil {
		return err
	}

	if cmd.inspectJSON {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, reports)
	}

	for _, r := range reports {
		if r.Err != "" {
			fmt.Fprintf(c.Root().Writer, "%s %s: %s\n",
				styles.ErrorStyle.Render("✗"), r.Path, r.Err)
			continue
		}
		fmt.Fprintf(c.Root().Writer, "%s %s: %d rows, headers: %s\n",
			styles.SuccessStyle.Render("✓"), r.Path, r.RowCount, strings.Join(r.Headers, ", "))
	}
	return nil
}
