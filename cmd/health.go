package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ragview/internal/api"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the backend's health",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := newClient(cfg)

		health, err := client.Health(cmd.Context())
		if err != nil {
			if api.IsUnreachable(err) {
				return fmt.Errorf("cannot connect to backend at %s", cfg.BaseURL)
			}
			return fmt.Errorf("health check failed: %w", err)
		}

		fmt.Printf("Backend:            %s\n", cfg.BaseURL)
		fmt.Printf("Status:             %s\n", health.Status)
		fmt.Printf("RAG enabled:        %s\n", yesNo(health.RAGEnabled))
		fmt.Printf("Groq API key:       %s\n", yesNo(health.GroqAPIConfigured))
		fmt.Printf("MongoDB connected:  %s\n", yesNo(health.MongoDBConnected))
		fmt.Printf("Sentiment ready:    %s\n", yesNo(health.SentimentReady))
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
