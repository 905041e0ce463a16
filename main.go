package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/commands"
	"github.com/colonyops/backlog/internal/core/config"
	"github.com/colonyops/backlog/internal/core/styles"
	"github.com/colonyops/backlog/internal/service"
	"github.com/colonyops/backlog/pkg/logutils"
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
		logCloser  func()
		backlogApp = &service.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "backlog",
		Usage:     "Keep a todo list per git repository",
		UsageText: "backlog [global options] [command [command options]]",
		Description: `backlog keeps a small todo list inside each git repository, stored in
.todo/backlog.json at the repository root.

Run 'backlog' with no arguments to print the pending items of the current repository.
Run 'backlog cli' to open the interactive editor.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("BACKLOG_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/backlog.log)",
				Sources:     cli.EnvVars("BACKLOG_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BACKLOG_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("BACKLOG_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"C"},
				Usage:       "run as if started in this directory",
				Destination: &flags.WorkDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Always log to a file so output never mixes with the editor screen
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.LogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			palette, err := cfg.Palette()
			if err != nil {
				// config validate reports the bad value; keep the base theme meanwhile
				log.Warn().Err(err).Msg("ignoring color overrides")
				palette, _ = styles.GetPalette(cfg.Theme)
			}
			styles.SetTheme(palette)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*backlogApp = *service.NewApp(cfg, log.With().Str("component", "backlog").Logger())

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	showCmd := commands.NewShowCmd(flags, backlogApp)

	app = commands.NewAddCmd(flags, backlogApp).Register(app)
	app = commands.NewListCmd(flags, backlogApp).Register(app)
	app = commands.NewDoneCmd(flags, backlogApp).Register(app)
	app = commands.NewRemoveCmd(flags, backlogApp).Register(app)
	app = commands.NewNextCmd(flags, backlogApp).Register(app)
	app = commands.NewCliCmd(flags, backlogApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Print the current backlog when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'backlog --help' for usage", c.Args().First())
		}
		return showCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
