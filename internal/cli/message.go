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

// newMessageCommand creates the message command.
func newMessageCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "message",
		Aliases: []string{"msg"},
		Short:   "Chat with OpenClaw",
	}

	cmd.AddCommand(
		newMessageSendCommand(c),
		newMessageListCommand(c),
	)

	return cmd
}

// newMessageSendCommand creates the message send subcommand.
func newMessageSendCommand(c *app.Container) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Send a command to OpenClaw",
		Long: `Send a message to OpenClaw and wait for the acknowledgement.

Examples:
  mc message send "Summarize my inbox"
  mc message send "Start the weekly report" --no-wait`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			before := len(c.Store.Snapshot().Messages)

			out, err := c.SendMessageUseCase().Execute(cmd.Context(), usecase.SendMessageInput{Text: text})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Replying || noWait {
				_, _ = fmt.Fprintln(w, "Sent.")
				return nil
			}

			c.Responder.Wait()
			msgs := c.Store.Snapshot().Messages
			if before < len(msgs) {
				printMessages(w, msgs[before:])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Do not wait for the reply")

	return cmd
}

// newMessageListCommand creates the message list subcommand.
func newMessageListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Limit int
		JSON  bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the chat history, oldest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListMessagesUseCase().Execute(cmd.Context(), usecase.ListMessagesInput{Limit: opts.Limit})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), out.Messages)
			}
			if len(out.Messages) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No messages.")
				return nil
			}
			printMessages(cmd.OutOrStdout(), out.Messages)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Most recent N messages (0 = all)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printMessages prints chat lines.
func printMessages(w io.Writer, msgs []domain.Message) {
	for _, m := range msgs {
		_, _ = fmt.Fprintf(w, "[%s] %s: %s\n", formatTime(m.Timestamp), m.Sender, m.Text)
	}
}
