// Package cli provides the command-line interface for mission-control.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sanirudh17/mission-control/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupBoard = "board"
	groupFeed  = "feed"
)

// dataDirFlag is the persistent flag that selects the data directory.
const dataDirFlag = "data-dir"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// DataDirFromArgs extracts --data-dir from raw arguments before the container exists.
// Only the data-dir flag is handed to the parser, so every other flag is left
// for cobra to validate.
func DataDirFromArgs(args []string) string {
	var own []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "--"+dataDirFlag+"=") {
			own = append(own, arg)
			continue
		}
		if arg == "--"+dataDirFlag && i+1 < len(args) {
			own = append(own, arg, args[i+1])
			i++
		}
	}

	fs := pflag.NewFlagSet("mc", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dataDir := fs.String(dataDirFlag, "", "")
	if err := fs.Parse(own); err != nil {
		return ""
	}
	return *dataDir
}

// NewRootCommand creates the root command for mission-control.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "mc",
		Short: "Mission control dashboard for OpenClaw",
		Long: `mission-control is a personal operations dashboard.

It keeps a task board, an activity feed, a list of deliverables and a
chat with the OpenClaw assistant in one persistent store. Running mc
without arguments opens the interactive board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().String(dataDirFlag, "", "Data directory (default: $MC_DATA_DIR or $XDG_DATA_HOME/mission-control)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
		&cobra.Group{ID: groupFeed, Title: "Feed Commands:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	snapshotCmd := newSnapshotCommand(c)
	snapshotCmd.GroupID = groupSetup

	// Board commands
	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupBoard

	boardCmd := newBoardCommand(c)
	boardCmd.GroupID = groupBoard

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupBoard

	// Feed commands
	activityCmd := newActivityCommand(c)
	activityCmd.GroupID = groupFeed

	deliverableCmd := newDeliverableCommand(c)
	deliverableCmd.GroupID = groupFeed

	messageCmd := newMessageCommand(c)
	messageCmd.GroupID = groupFeed

	root.AddCommand(
		configCmd,
		snapshotCmd,
		taskCmd,
		boardCmd,
		tuiCmd,
		activityCmd,
		deliverableCmd,
		messageCmd,
	)

	return root
}
