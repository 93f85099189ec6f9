package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase"
)

// newTaskCommand creates the task command.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage board tasks",
		Long:  `Create, edit, move and inspect tasks on the mission control board.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskEditCommand(c),
		newTaskMoveCommand(c),
		newTaskListCommand(c),
		newTaskShowCommand(c),
		newTaskImportCommand(c),
	)

	return cmd
}

// newTaskAddCommand creates the task add subcommand.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts usecase.AddTaskInput

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task at the top of the board.

The task defaults to priority P3, status Queue, progress 0 and source
Internal. A "New task" entry is written to the activity feed.

Examples:
  # Create a task in the queue
  mc task add "Review quarterly numbers"

  # Create an urgent task that is already being worked on
  mc task add "Fix login" --priority P1 --status "In Progress" --progress 20

  # Create a task imported from Todoist with a due date
  mc task add "Call the bank" --source Todoist --due 2026-10-30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Title = strings.Join(args, " ")

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", shortID(out.Task.ID), out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: P1, P2, P3 or P4 (default P3)")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Status: queue, in_progress or completed (default queue)")
	cmd.Flags().StringVar(&opts.Source, "source", "", "Source: Todoist or Internal (default Internal)")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.Progress, "progress", 0, "Initial progress percentage")

	return cmd
}

// newTaskEditCommand creates the task edit subcommand.
func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Status      string
		Source      string
		DueDate     string
		Progress    int
	}

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Aliases: []string{"update"},
		Short:   "Edit a task",
		Long: `Edit fields of an existing task. Only the flags you pass are changed.

The task can be referenced by its full ID or any unique ID prefix.
Changing the status writes a "moved to" entry to the activity feed.

Examples:
  # Update progress
  mc task edit 3f2a --progress 60

  # Rename and reprioritize
  mc task edit 3f2a --title "Fix login flow" --priority P2

  # Clear the due date
  mc task edit 3f2a --due ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.EditTaskInput{TaskRef: args[0]}
			flags := cmd.Flags()
			if flags.Changed("title") {
				in.Title = &opts.Title
			}
			if flags.Changed("description") {
				in.Description = &opts.Description
			}
			if flags.Changed("priority") {
				in.Priority = &opts.Priority
			}
			if flags.Changed("status") {
				in.Status = &opts.Status
			}
			if flags.Changed("source") {
				in.Source = &opts.Source
			}
			if flags.Changed("due") {
				in.DueDate = &opts.DueDate
			}
			if flags.Changed("progress") {
				in.Progress = &opts.Progress
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", shortID(out.Task.ID))
			if out.Moved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved to %s\n", out.Task.Status.Display())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "New status")
	cmd.Flags().StringVar(&opts.Source, "source", "", "New source")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "New due date (YYYY-MM-DD, empty clears)")
	cmd.Flags().IntVar(&opts.Progress, "progress", 0, "New progress percentage")

	return cmd
}

// newTaskMoveCommand creates the task move subcommand.
func newTaskMoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another board column",
		Long: `Move a task to another column, the same way dropping a card on a
column does on the board.

Status is one of: queue, in_progress, completed (done).

Examples:
  mc task move 3f2a in_progress
  mc task move 3f2a done`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}

			// Resolve a prefix to a full ID; the move itself takes exact IDs.
			shown, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskRef: args[0]})
			if err != nil {
				return err
			}

			out, err := c.MoveTaskUseCase().Execute(cmd.Context(), usecase.MoveTaskInput{
				TaskID: shown.Task.ID,
				Status: status,
			})
			if err != nil {
				return err
			}

			if out.Moved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to %s\n", shortID(shown.Task.ID), status.Display())
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is already in %s\n", shortID(shown.Task.ID), status.Display())
			}
			return nil
		},
	}
	return cmd
}

// newTaskListCommand creates the task list subcommand.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		Source string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks, newest first.

Examples:
  mc task list
  mc task list --status in_progress
  mc task list --source Todoist --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Status: opts.Status,
				Source: opts.Source,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status")
	cmd.Flags().StringVar(&opts.Source, "source", "", "Filter by source")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printTaskList prints tasks in a table format.
func printTaskList(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tPRI\tSTATUS\tPROGRESS\tSOURCE\tDUE\tTITLE")

	// Rows
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%s\t%s\n",
			shortID(t.ID),
			t.Priority,
			t.Status.Display(),
			t.Progress,
			t.Source,
			orDash(t.DueDate),
			t.Title,
		)
	}
}

// newTaskShowCommand creates the task show subcommand.
func newTaskShowCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display a task and the deliverables linked to it.

The task can be referenced by its full ID or any unique ID prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskRef: args[0]})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Deliverables []domain.Deliverable `json:"deliverables"`
					domain.Task
				}{Task: out.Task, Deliverables: out.Deliverables})
			}
			printTaskDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

// printTaskDetails prints a task with its deliverables.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput) {
	task := out.Task

	_, _ = fmt.Fprintf(w, "# %s\n\n", task.Title)
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", task.Description)
	}

	_, _ = fmt.Fprintf(w, "ID: %s\n", task.ID)
	_, _ = fmt.Fprintf(w, "Status: %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority)
	_, _ = fmt.Fprintf(w, "Progress: %d%%\n", task.Progress)
	_, _ = fmt.Fprintf(w, "Source: %s\n", task.Source)
	_, _ = fmt.Fprintf(w, "Due: %s\n", orDash(task.DueDate))
	_, _ = fmt.Fprintf(w, "Created: %s\n", formatTime(task.CreatedAt))

	if len(out.Deliverables) > 0 {
		_, _ = fmt.Fprintln(w, "\nDeliverables:")
		for _, d := range out.Deliverables {
			_, _ = fmt.Fprintf(w, "  [%s] %s %s\n", d.Type, d.Name, d.URL)
		}
	}
}

// newTaskImportCommand creates the task import subcommand.
func newTaskImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create tasks from a YAML file",
		Long: `Create one task per entry of a YAML file. Use "-" to read stdin.

Entries are added in file order, so the last entry appears at the top
of the board.

File format:
  - title: Draft agenda
    priority: P2
  - title: Book room
    status: in_progress
    progress: 30
    dueDate: "2026-10-20"
    source: Todoist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				content []byte
				err     error
			)
			if args[0] == "-" {
				content, err = io.ReadAll(cmd.InOrStdin())
			} else {
				content, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: string(content),
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintf(w, "Would create %d task(s):\n", len(out.Tasks))
				for _, t := range out.Tasks {
					_, _ = fmt.Fprintf(w, "  [%s %s] %s\n", t.Task.Priority, t.Task.Status.Display(), t.Task.Title)
				}
				return nil
			}

			_, _ = fmt.Fprintf(w, "Created %d task(s):\n", len(out.Tasks))
			for _, t := range out.Tasks {
				_, _ = fmt.Fprintf(w, "  %s %s\n", shortID(t.ID), t.Task.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and preview without creating tasks")

	return cmd
}
