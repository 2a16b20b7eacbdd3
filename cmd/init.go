package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ragview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Writes a .ragview.yml with default settings to the current directory. Existing files are left alone unless the overwrite is confirmed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			ok, err := confirm(fmt.Sprintf("%s already exists, overwrite", cfgFile))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		cfg := config.DefaultConfig()
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		if err := cfg.Save(cfgFile); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Wrote %s (backend %s)\n", cfgFile, cfg.BaseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
