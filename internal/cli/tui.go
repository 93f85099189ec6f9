package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive board.
// Running mc without arguments does the same.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive board",
		Long: `Launch the interactive terminal board.

The board shows the task columns, the activity stream and the command
center. Changes made from other mc processes appear after a restart;
changes made in this session appear immediately.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the board against the container's store.
func launchTUI(c *app.Container) error {
	if c == nil || c.Store == nil {
		return errors.New("tui requires an open store")
	}
	return tui.Run(c)
}
