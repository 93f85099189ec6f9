package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase"
)

func newSnapshotCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect the persisted state",
		Long:  "Print the stored state record or list saved revisions (git backend).",
	}

	cmd.AddCommand(newSnapshotShowCommand(c))
	cmd.AddCommand(newSnapshotListCommand(c))

	return cmd
}

func newSnapshotShowCommand(c *app.Container) *cobra.Command {
	var revision string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the state record as JSON",
		Long: `Print the current state in the persisted record format:
{"state": {"tasks": [...], "activities": [...], "deliverables": [...], "messages": [...]}, "version": 0}

With --revision, print a past snapshot from the git backend history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap := c.Store.Snapshot()
			if revision != "" {
				out, err := c.ShowHistoryUseCase().Execute(cmd.Context(), usecase.ShowHistoryInput{Revision: revision})
				if err != nil {
					return err
				}
				snap = *out.Snapshot
			}

			return writeJSON(cmd.OutOrStdout(), domain.PersistedRecord{
				State:   snap,
				Version: domain.SnapshotVersion,
			})
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Revision hash to print instead of the current state")

	return cmd
}

func newSnapshotListCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved revisions (git backend)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowHistoryUseCase().Execute(cmd.Context(), usecase.ShowHistoryInput{Limit: limit})
			if err != nil {
				return err
			}

			printRevisions(cmd.OutOrStdout(), out.Revisions)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum revisions (0 = all)")

	return cmd
}

func printRevisions(w io.Writer, revs []domain.Revision) {
	if len(revs) == 0 {
		_, _ = fmt.Fprintln(w, "No snapshots saved yet.")
		return
	}
	for _, r := range revs {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", r.Hash[:7], formatTime(r.When), strings.TrimSpace(r.Message))
	}
}
