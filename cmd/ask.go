package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ragview/internal/progress"
	"ragview/internal/render"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question over the indexed pages",
	Long:  `Sends one question to the backend's retrieval pipeline and prints the generated answer with its sources.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().Int("results", 0, "number of passages to retrieve (overrides config)")
	askCmd.Flags().Bool("json", false, "output the raw answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := args[0]

	nResults, _ := cmd.Flags().GetInt("results")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if nResults <= 0 {
		nResults = cfg.NResults
	}
	client := newClient(cfg)

	spinner := progress.NewSpinner()
	spinner.Start("Thinking...")
	res, err := client.Query(ctx, question, nResults)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Print(render.AnswerText(res))
	return nil
}
