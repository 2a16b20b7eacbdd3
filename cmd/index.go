package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ragview/internal/progress"
)

var indexCmd = &cobra.Command{
	Use:   "index [url]",
	Short: "Scrape a page and add it to the question-answering index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pageURL := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		spinner := progress.NewSpinner()
		spinner.Start(fmt.Sprintf("Indexing %s...", pageURL))
		res, err := client.ScrapeAndIndex(ctx, pageURL)
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("indexing failed: %w", err)
		}

		title := res.Title
		if title == "" {
			title = pageURL
		}
		fmt.Printf("Indexed %q: %d chunks added\n", title, res.ChunksIndexed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
