package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ternarybob/smarttravellers/internal/services/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Talk to the weather-aware travel assistant",
	Long: `Ask the travel assistant anything about a trip. The last word of each
question is treated as the city and its current weather is added to the answer.
With a question argument a single answer is printed; otherwise an interactive
session starts (type "exit" to leave).`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	session := chat.NewSession(application.Assistant)

	if len(args) > 0 {
		reply, err := session.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, reply)
		return nil
	}

	p := newPrompter(cmd.InOrStdin(), out)
	fmt.Fprintln(out, "✈️ Ask anything about your next trip (e.g., 'Plan 3 days in Goa'). Type \"exit\" to leave.")

	for {
		prompt, err := p.ask("\nYou: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.ToLower(prompt) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		reply, err := session.Ask(cmd.Context(), prompt)
		if err != nil {
			if cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			logger.Warn().Err(err).Msg("Assistant reply failed")
			fmt.Fprintf(out, "\n⚠️ Oops! Something went wrong: %v\n", err)
			continue
		}

		fmt.Fprintf(out, "\nAssistant:\n%s\n", reply)
	}
}
