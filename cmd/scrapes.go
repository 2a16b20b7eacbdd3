package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ragview/internal/api"
	"ragview/internal/render"
)

var scrapesCmd = &cobra.Command{
	Use:   "scrapes",
	Short: "Browse the server-side scrape history",
}

var scrapesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scrapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		skip, _ := cmd.Flags().GetInt("skip")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		scrapes, err := client.Scrapes(cmd.Context(), limit, skip)
		if err != nil {
			return fmt.Errorf("listing scrapes: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(scrapes)
		}

		if len(scrapes) == 0 {
			fmt.Println("No scrapes stored.")
			return nil
		}
		printScrapeList(scrapes)
		return nil
	},
}

var scrapesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one stored scrape in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		scrape, err := client.ScrapeByID(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetching scrape: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(scrape)
		}

		fmt.Printf("ID:        %s\n", scrape.ID)
		fmt.Printf("Scraped:   %s\n", scrape.ScrapedAt)
		fmt.Printf("Indexed:   %s\n\n", yesNo(scrape.IndexedInRAG))
		if scrape.Data != nil {
			fmt.Print(render.ScrapeText(scrape.Data))
		} else {
			fmt.Printf("URL:   %s\nTitle: %s\n", scrape.URL, scrape.Title)
		}
		return nil
	},
}

var scrapesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored scrapes by text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		scrapes, err := client.SearchScrapes(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("searching scrapes: %w", err)
		}

		if len(scrapes) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		printScrapeList(scrapes)
		return nil
	},
}

var scrapesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one stored scrape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			ok, err := confirm(fmt.Sprintf("Delete scrape %s", args[0]))
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

		if err := client.DeleteScrape(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("deleting scrape: %w", err)
		}

		fmt.Println("Scrape deleted.")
		return nil
	},
}

var scrapesReindexCmd = &cobra.Command{
	Use:   "reindex [id]",
	Short: "Re-add one stored scrape to the question-answering index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		res, err := client.ReindexScrape(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("reindexing scrape: %w", err)
		}

		title := res.Title
		if title == "" {
			title = res.URL
		}
		fmt.Printf("Reindexed %q: %d chunks added\n", title, res.ChunksIndexed)
		return nil
	},
}

var scrapesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the scrape store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		stats, err := client.ScrapeStoreStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching scrape stats: %w", err)
		}

		fmt.Printf("Stored scrapes:  %d\n", stats.Total)
		fmt.Printf("Indexed in RAG:  %d\n", stats.Indexed)
		fmt.Printf("Not indexed:     %d\n", stats.NotIndexed)
		return nil
	},
}

func printScrapeList(scrapes []api.StoredScrape) {
	fmt.Printf("%d stored scrape(s):\n\n", len(scrapes))
	for i, s := range scrapes {
		title := s.Title
		if title == "" {
			title = "Unknown"
		}
		indexed := ""
		if s.IndexedInRAG {
			indexed = " [indexed]"
		}
		fmt.Printf("  %d. %s%s\n     %s\n     id=%s scraped=%s\n",
			i+1, title, indexed, s.URL, s.ID, s.ScrapedAt)
	}
}

func init() {
	scrapesListCmd.Flags().Int("limit", 10, "maximum number of scrapes to list")
	scrapesListCmd.Flags().Int("skip", 0, "number of scrapes to skip")
	scrapesListCmd.Flags().Bool("json", false, "output scrapes as JSON")
	scrapesShowCmd.Flags().Bool("json", false, "output the scrape as JSON")
	scrapesDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	scrapesCmd.AddCommand(scrapesListCmd)
	scrapesCmd.AddCommand(scrapesShowCmd)
	scrapesCmd.AddCommand(scrapesSearchCmd)
	scrapesCmd.AddCommand(scrapesDeleteCmd)
	scrapesCmd.AddCommand(scrapesReindexCmd)
	scrapesCmd.AddCommand(scrapesStatsCmd)
	rootCmd.AddCommand(scrapesCmd)
}
