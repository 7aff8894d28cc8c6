package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/s-stratton/simplyjobs/internal/app"
	"github.com/s-stratton/simplyjobs/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *app.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *app.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	logger := log.With().Str("component", "tui").Logger()
	logger.Info().
		Str("username", cmd.app.Session.Username).
		Str("role", string(cmd.app.Session.Account)).
		Msg("starting interface")

	return tui.Run(tui.Options{
		Config:  cmd.app.Config,
		Client:  cmd.app.Client,
		Bridge:  cmd.app.Bridge,
		Session: cmd.app.Session,
		Logger:  logger,
	})
}
