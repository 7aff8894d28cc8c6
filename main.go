package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/app"
	"github.com/s-stratton/simplyjobs/internal/commands"
	"github.com/s-stratton/simplyjobs/internal/core/config"
	"github.com/s-stratton/simplyjobs/internal/core/session"
	"github.com/s-stratton/simplyjobs/internal/data/db"
	"github.com/s-stratton/simplyjobs/internal/data/stores"
	"github.com/s-stratton/simplyjobs/internal/notify"
	"github.com/s-stratton/simplyjobs/pkg/logutils"
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
		jobsApp   = &app.App{}
		database  *db.DB
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "simplyjobs",
		Usage:     "Swipe through jobs and applicants from the terminal",
		UsageText: "simplyjobs [global options] command [command options]",
		Description: `SimplyJobs is a card-stack client for the SimplyJobs server.

Jobseekers swipe through open positions and apply with a gesture;
employers triage applicants one card at a time or in bulk.

Run 'simplyjobs' with no arguments to open the interface.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SIMPLYJOBS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/simplyjobs.log)",
				Sources:     cli.EnvVars("SIMPLYJOBS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SIMPLYJOBS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("SIMPLYJOBS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "session-file",
				Usage:       "path to the session file written by the login flow",
				Sources:     cli.EnvVars("SIMPLYJOBS_SESSION_FILE"),
				Value:       commands.DefaultSessionFile(),
				Destination: &flags.SessionFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; the TUI owns stdout.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "simplyjobs.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			sessionFile := cfg.SessionFile
			if sessionFile == "" {
				sessionFile = flags.SessionFile
			}
			sess, err := session.Load(sessionFile)
			if err != nil {
				return ctx, fmt.Errorf("load session (run the login flow first): %w", err)
			}

			database, err = db.Open(cfg.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			kvStore := stores.NewKVStore(database)
			bridge := notify.NewBridge(kvStore)

			client := api.New(
				cfg.Server.URL,
				sess.Token,
				cfg.Server.Timeout,
				log.With().Str("component", "api").Logger(),
			)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*jobsApp = app.App{
				Config:  cfg,
				Session: sess,
				Client:  client,
				DB:      database,
				KV:      kvStore,
				Bridge:  bridge,
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, jobsApp)

	root = commands.NewConfigValidateCmd(flags).Register(root)
	root = commands.NewWhoamiCmd(flags, jobsApp).Register(root)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'simplyjobs --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
