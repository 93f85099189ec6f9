package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase"
)

// newBoardCommand creates the board command.
func newBoardCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Source string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the task board",
		Long: `Print the three board columns: Queue, In Progress and Done.

By default only tasks from the configured board source (Internal) are
shown. Use --source all to include every task.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowBoardUseCase().Execute(cmd.Context(), usecase.ShowBoardInput{Source: opts.Source})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printBoard(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Source filter: Todoist, Internal or all (default from config)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printBoard prints every column with its tasks.
func printBoard(w io.Writer, board *usecase.ShowBoardOutput) {
	_, _ = fmt.Fprintf(w, "OpenClaw Work Queue (%d active tasks)\n", board.Active)

	for _, col := range board.Columns {
		_, _ = fmt.Fprintf(w, "\n%s (%d)\n", col.Status.Display(), len(col.Tasks))
		for _, t := range col.Tasks {
			line := fmt.Sprintf("  %s [%s] %s", shortID(t.ID), t.Priority, t.Title)
			if t.Progress > 0 && t.Status != domain.StatusCompleted {
				line += fmt.Sprintf(" %d%%", t.Progress)
			}
			_, _ = fmt.Fprintln(w, line)
		}
	}
}
