package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ragview/internal/progress"
	"ragview/internal/render"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Scrape a page and print its extracted content",
	Long:  `Scrapes one page through the backend and prints its metadata, headings, paragraphs, links, and tables. The result can also be saved as a markdown or HTML report.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScrape,
}

func init() {
	scrapeCmd.Flags().Bool("json", false, "output the raw result as JSON")
	scrapeCmd.Flags().String("save", "", "write a markdown report to the given file")
	scrapeCmd.Flags().String("html", "", "write an HTML report to the given file")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pageURL := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")
	htmlPath, _ := cmd.Flags().GetString("html")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	spinner := progress.NewSpinner()
	spinner.Start(fmt.Sprintf("Scraping %s...", pageURL))
	res, err := client.Scrape(ctx, pageURL)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if savePath != "" {
		if err := os.WriteFile(savePath, []byte(render.ScrapeMarkdown(res)), 0644); err != nil {
			return fmt.Errorf("writing markdown report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Markdown report written to %s\n", savePath)
	}

	if htmlPath != "" {
		page, err := render.ScrapeHTMLReport(res)
		if err != nil {
			return fmt.Errorf("rendering HTML report: %w", err)
		}
		if err := os.WriteFile(htmlPath, page, 0644); err != nil {
			return fmt.Errorf("writing HTML report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "HTML report written to %s\n", htmlPath)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Print(render.ScrapeText(res))
	return nil
}
