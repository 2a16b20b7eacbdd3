package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"ragview/internal/progress"
	"ragview/internal/render"
	"ragview/internal/view"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat over the indexed pages from the terminal",
	Long: `Starts an interactive chat session over the indexed content. Besides
questions, the prompt accepts a few commands:

  /sources      list the indexed sources
  /index <url>  scrape and index a page
  /quit         leave the session`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	controller := view.New(newClient(cfg), cfg.NResults)

	for _, msg := range controller.Startup(ctx) {
		fmt.Printf("[%s] %s\n", msg.Kind, msg.Content)
	}
	fmt.Println("Type a question, or /quit to leave.")
	fmt.Println()

	prompt := promptui.Prompt{
		Label:     ">",
		AllowEdit: true,
	}

	for {
		line, err := prompt.Run()
		if err != nil {
			// Ctrl-C or Ctrl-D ends the session.
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "/quit", line == "/exit":
			return nil
		case line == "/sources":
			sources := controller.RefreshSources(ctx)
			if errMsg := controller.State().SourcesErr; errMsg != "" {
				fmt.Printf("Could not list sources: %s\n\n", errMsg)
				continue
			}
			fmt.Print(render.SourcesText(sources))
			fmt.Println()
		case strings.HasPrefix(line, "/index"):
			url := strings.TrimSpace(strings.TrimPrefix(line, "/index"))
			msg, err := controller.IndexURL(ctx, url)
			if errors.Is(err, view.ErrEmptyInput) {
				fmt.Println("Usage: /index <url>")
				continue
			}
			fmt.Printf("%s\n\n", msg.Content)
		case strings.HasPrefix(line, "/"):
			fmt.Printf("Unknown command %s\n\n", line)
		default:
			if err := chatAsk(ctx, controller, line); err != nil {
				return err
			}
		}
	}
}

// chatAsk submits one question and prints the terminal answer. Backend
// failures are shown inline and do not end the session.
func chatAsk(ctx context.Context, controller *view.Controller, question string) error {
	spinner := progress.NewSpinner()
	spinner.Start("Thinking...")
	msg, err := controller.Ask(ctx, question)
	spinner.Stop()

	if err != nil {
		fmt.Printf("%s\n\n", msg.Content)
		return nil
	}

	fmt.Printf("%s\n", msg.Content)
	if len(msg.Sources) > 0 {
		fmt.Println("\nSources:")
		for i, s := range msg.Sources {
			title := s.Title
			if title == "" {
				title = s.URL
			}
			fmt.Printf("  [%d] %s - %s\n", i+1, title, s.URL)
		}
	}
	fmt.Println()
	return nil
}
