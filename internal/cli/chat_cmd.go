package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/domain"
)

func newChatCmd(app *App) *cobra.Command {
	var program, message string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the planning assistant",
		Long: "Opens an interactive chat session. With --message the single\n" +
			"message is sent and the reply printed without entering the session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var programID *string
			if program != "" {
				id, err := resolveProgramID(ctx, app, program)
				if err != nil {
					return err
				}
				programID = &id
			}

			if message != "" {
				reply, err := app.Chat.Send(ctx, programID, message)
				if err != nil {
					return err
				}
				fmt.Println(reply.Content)
				return nil
			}

			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("interactive chat requires a terminal; use --message")
			}
			return runChatSession(app, programID)
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Scope the conversation to a program")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Send one message and exit")

	cmd.AddCommand(newChatHistoryCmd(app))

	return cmd
}

func newChatHistoryCmd(app *App) *cobra.Command {
	var program string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent chat messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var messages []*domain.ChatMessage
			var err error
			if program != "" {
				var programID string
				programID, err = resolveProgramID(ctx, app, program)
				if err != nil {
					return err
				}
				messages, err = app.Chat.History(ctx, programID)
			} else {
				messages, err = app.Chat.Recent(ctx, limit)
			}
			if err != nil {
				return err
			}

			for _, msg := range messages {
				fmt.Println(renderChatMessage(msg))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&program, "program", "", "Program ID, prefix, or name")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum messages to show")

	return cmd
}

func renderChatMessage(msg *domain.ChatMessage) string {
	label := formatter.StyleBlue.Render("you")
	if msg.Role == domain.ChatAssistant {
		label = formatter.StyleGreen.Render("assistant")
	}
	return fmt.Sprintf("%s %s\n%s", label,
		formatter.Dim(msg.CreatedAt.Format("Jan 2 15:04")), msg.Content)
}
