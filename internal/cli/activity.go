package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase"
)

// newActivityCommand creates the activity command.
func newActivityCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Read or write the activity feed",
	}

	cmd.AddCommand(
		newActivityAddCommand(c),
		newActivityListCommand(c),
	)

	return cmd
}

// newActivityAddCommand creates the activity add subcommand.
func newActivityAddCommand(c *app.Container) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an entry to the activity feed",
		Long: `Add an entry to the top of the activity feed.

Examples:
  mc activity add "Cleared the inbox" --type Email
  mc activity add "Nightly backup finished"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddActivityUseCase().Execute(cmd.Context(), usecase.AddActivityInput{
				Text: strings.Join(args, " "),
				Type: typ,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %s activity\n", out.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "Type: Task, Email, System or Deliverable (default System)")

	return cmd
}

// newActivityListCommand creates the activity list subcommand.
func newActivityListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type  string
		Limit int
		JSON  bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the activity feed, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListActivitiesUseCase().Execute(cmd.Context(), usecase.ListActivitiesInput{
				Type:  opts.Type,
				Limit: opts.Limit,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), out.Activities)
			}
			printActivities(cmd.OutOrStdout(), out.Activities)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Filter by type")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum entries (0 = all)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printActivities prints activity entries in a table format.
func printActivities(w io.Writer, activities []domain.Activity) {
	if len(activities) == 0 {
		_, _ = fmt.Fprintln(w, "No activity.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "TIME\tTYPE\tTEXT")
	for _, a := range activities {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", formatTime(a.Timestamp), a.Type, a.Text)
	}
}
