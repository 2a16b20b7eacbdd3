package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"ragview/internal/render"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the question-answering index",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the indexed sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		sources, err := client.IndexedSources(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing sources: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sources)
		}

		fmt.Print(render.SourcesText(sources))
		return nil
	},
}

var sourcesDeleteCmd = &cobra.Command{
	Use:   "delete [url]",
	Short: "Remove one source from the index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceURL := args[0]
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			ok, err := confirm(fmt.Sprintf("Delete %s from the index", sourceURL))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		res, err := client.DeleteSource(cmd.Context(), sourceURL)
		if err != nil {
			return fmt.Errorf("deleting source: %w", err)
		}

		fmt.Printf("Deleted %s (%d chunks removed)\n", sourceURL, res.DeletedChunks)
		return nil
	},
}

var sourcesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every source from the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			ok, err := confirm("Clear the entire index")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		if err := client.ClearIndex(cmd.Context()); err != nil {
			return fmt.Errorf("clearing index: %w", err)
		}

		fmt.Println("Index cleared.")
		return nil
	},
}

// confirm shows a yes/no prompt. A declined prompt is not an error.
func confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return true, nil
}

func init() {
	sourcesListCmd.Flags().Bool("json", false, "output sources as JSON")
	sourcesDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	sourcesClearCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesDeleteCmd)
	sourcesCmd.AddCommand(sourcesClearCmd)
	rootCmd.AddCommand(sourcesCmd)
}
