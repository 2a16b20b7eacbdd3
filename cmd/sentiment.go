package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Sentiment analysis over text or stored scrapes",
}

var sentimentAnalyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Classify the sentiment of a piece of text or a stored scrape",
	Long:  `Classifies free text passed as an argument, or aggregates sentiment over a stored scrape's paragraphs when --scrape is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scrapeID, _ := cmd.Flags().GetString("scrape")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		if scrapeID != "" {
			res, err := client.ScrapeSentiment(cmd.Context(), scrapeID)
			if err != nil {
				return fmt.Errorf("analyzing scrape sentiment: %w", err)
			}

			title := res.Title
			if title == "" {
				title = res.URL
			}
			fmt.Printf("Scrape:    %s\n", title)
			if res.Summary == nil {
				fmt.Println("No sentiment summary available.")
				return nil
			}
			fmt.Printf("Overall:   %s\n", res.Summary.OverallSentiment)
			fmt.Printf("Positive:  %d of %d paragraph(s) (%.1f%%)\n", res.Summary.Positive, res.Summary.Total, res.Summary.PositivePct)
			fmt.Printf("Negative:  %d of %d paragraph(s) (%.1f%%)\n", res.Summary.Negative, res.Summary.Total, res.Summary.NegativePct)
			fmt.Printf("Neutral:   %d of %d paragraph(s) (%.1f%%)\n", res.Summary.Neutral, res.Summary.Total, res.Summary.NeutralPct)
			fmt.Printf("Avg score: %.3f\n", res.Summary.AverageScore)
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("provide text to analyze or --scrape with a stored scrape ID")
		}

		res, err := client.AnalyzeSentiment(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("analyzing sentiment: %w", err)
		}

		fmt.Printf("Label: %s\n", res.Label)
		fmt.Printf("Score: %.3f\n", res.Score)
		return nil
	},
}

var sentimentStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate sentiment across the scrape store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		stats, err := client.SentimentStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching sentiment stats: %w", err)
		}

		fmt.Printf("Analyzed:  %d scrape(s)\n", stats.TotalAnalyzed)
		fmt.Printf("Positive:  %d (%.1f%%)\n", stats.Positive, stats.PositivePct)
		fmt.Printf("Negative:  %d (%.1f%%)\n", stats.Negative, stats.NegativePct)
		fmt.Printf("Neutral:   %d (%.1f%%)\n", stats.Neutral, stats.NeutralPct)
		return nil
	},
}

func init() {
	sentimentAnalyzeCmd.Flags().String("scrape", "", "stored scrape ID to analyze instead of free text")

	sentimentCmd.AddCommand(sentimentAnalyzeCmd)
	sentimentCmd.AddCommand(sentimentStatsCmd)
	rootCmd.AddCommand(sentimentCmd)
}
