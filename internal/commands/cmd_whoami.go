package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/s-stratton/simplyjobs/internal/app"
)

type WhoamiCmd struct {
	flags *Flags
	app   *app.App
}

// NewWhoamiCmd creates a new whoami command.
func NewWhoamiCmd(flags *Flags, app *app.App) *WhoamiCmd {
	return &WhoamiCmd{flags: flags, app: app}
}

// Register adds the whoami command to the application.
func (cmd *WhoamiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "whoami",
		Usage:     "Show the logged-in account",
		UsageText: "simplyjobs whoami",
		Action:    cmd.run,
	})

	return app
}

func (cmd *WhoamiCmd) run(_ context.Context, c *cli.Command) error {
	s := cmd.app.Session
	_, err := fmt.Fprintf(c.Root().Writer, "%s (%s)\n", s.Username, s.Account)
	return err
}
