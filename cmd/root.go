package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	baseURL string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ragview",
	Short: "Terminal and web client for the scraper/RAG backend",
	Long: `ragview is a client for a web-scraping and retrieval backend. It scrapes
pages, indexes them for question answering, and chats over the indexed
content from the terminal, a local web console, or an MCP server for
AI agents.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".ragview.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
