package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase"
)

// newDeliverableCommand creates the deliverable command.
func newDeliverableCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deliverable",
		Aliases: []string{"dl"},
		Short:   "Register or list deliverables",
	}

	cmd.AddCommand(
		newDeliverableAddCommand(c),
		newDeliverableListCommand(c),
	)

	return cmd
}

// newDeliverableAddCommand creates the deliverable add subcommand.
func newDeliverableAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type   string
		TaskID string
	}

	cmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Register a deliverable",
		Long: `Register an artifact produced for the user. A "Deliverable ready"
entry is written to the activity feed.

Examples:
  mc deliverable add "Landing mockup" https://example.com/mock.png --type image
  mc deliverable add "Q3 report" file:///home/me/q3.pdf --type file --task 3f2a`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddDeliverableUseCase().Execute(cmd.Context(), usecase.AddDeliverableInput{
				Name:   args[0],
				URL:    args[1],
				Type:   opts.Type,
				TaskID: opts.TaskID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added deliverable %s\n", shortID(out.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Type: image, file or link (default link)")
	cmd.Flags().StringVar(&opts.TaskID, "task", "", "Related task ID")

	return cmd
}

// newDeliverableListCommand creates the deliverable list subcommand.
func newDeliverableListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type   string
		TaskID string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deliverables, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListDeliverablesUseCase().Execute(cmd.Context(), usecase.ListDeliverablesInput{
				Type:   opts.Type,
				TaskID: opts.TaskID,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), out.Deliverables)
			}
			printDeliverables(cmd.OutOrStdout(), out.Deliverables)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "Filter by type")
	cmd.Flags().StringVar(&opts.TaskID, "task", "", "Filter by related task ID")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printDeliverables prints deliverables in a table format.
func printDeliverables(w io.Writer, deliverables []domain.Deliverable) {
	if len(deliverables) == 0 {
		_, _ = fmt.Fprintln(w, "No deliverables.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tTYPE\tTASK\tCREATED\tNAME\tURL")
	for _, d := range deliverables {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(d.ID), d.Type, orDash(shortID(d.TaskID)), formatTime(d.CreatedAt), d.Name, d.URL)
	}
}
