package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/aurora-ops/aurora/internal/aurora"
	"github.com/aurora-ops/aurora/internal/commands"
	"github.com/aurora-ops/aurora/internal/core/config"
	"github.com/aurora-ops/aurora/internal/core/speech"
	"github.com/aurora-ops/aurora/internal/data/stores"
	"github.com/aurora-ops/aurora/pkg/executil"
	"github.com/aurora-ops/aurora/pkg/logutils"
	"github.com/aurora-ops/aurora/pkg/randid"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		auroraApp = &aurora.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "aurora",
		Usage:     "Voice-first marketplace command console for sellers",
		UsageText: "aurora [global options] command [command options]",
		Description: `Aurora interprets natural-language commands to manage your task board
and to transform raw product data into optimized catalog listings for
Amazon, Flipkart, Meesho, and Myntra.

Run 'aurora' with no arguments to open the interactive console.
Run 'aurora say "<command>"' to interpret a single command.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("AURORA_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("AURORA_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("AURORA_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file so the console UI on stdout stays clean.
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			// Session ID ties every line of one run together in the shared log file.
			log.Logger = logger.With().Str("session", randid.Generate(8)).Logger()
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			var speaker speech.Speaker = speech.NoopSpeaker{}
			if cfg.Assistant.Speech.Enabled {
				speaker = speech.NewCommandSpeaker(&executil.RealExecutor{}, cfg.Assistant.Speech.Command, log.Logger)
			}

			taskStore := stores.NewTaskStore()

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*auroraApp = *aurora.NewApp(cfg, taskStore, speaker, log.Logger)

			if err := auroraApp.Tasks.Seed(ctx, cfg.Tasks.Starters); err != nil {
				return ctx, fmt.Errorf("seed starter tasks: %w", err)
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	consoleCmd := commands.NewConsoleCmd(flags, auroraApp)

	app = consoleCmd.Register(app)
	app = commands.NewSayCmd(flags, auroraApp).Register(app)
	app = commands.NewTaskCmd(flags, auroraApp).Register(app)
	app = commands.NewCatalogCmd(flags, auroraApp).Register(app)
	app = commands.NewConfigCmd(flags, auroraApp).Register(app)

	// Open the console when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'aurora --help' for usage", c.Args().First())
		}
		return consoleCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
