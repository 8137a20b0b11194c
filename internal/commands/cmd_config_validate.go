package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/core/styles"
)

// ConfigCmd implements the aurora config command group.
type ConfigCmd struct {
	flags *Flags
	app   *aurora.App
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags, app *aurora.App) *ConfigCmd {
	return &ConfigCmd{flags: flags, app: app}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate the configuration file",
				UsageText:   "aurora config validate",
				Description: "Validates the configuration file, including speech command lookup.",
				Action:      cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	if err := cmd.app.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		return fmt.Errorf("config invalid:\n%w", err)
	}

	fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render("config valid"))
	return nil
}
