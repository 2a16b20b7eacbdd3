package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ragview/internal/console"
	"ragview/internal/view"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web console",
	Long:  `Starts the local web console: a browser UI for scraping pages, managing the index, and chatting over the indexed content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		client := newClient(cfg)
		controller := view.New(client, cfg.NResults)

		// Run the startup health check so its outcome is in the feed
		// before the first page load, and echo it for the operator.
		for _, msg := range controller.Startup(cmd.Context()) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", msg.Kind, msg.Content)
		}

		srv := console.New(console.Config{
			Port:     cfg.Port,
			AllowAll: serveAllowAll || cfg.AllowAllOrigins,
		}, controller, client)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down console...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "ragview console v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Backend: %s\n", cfg.BaseURL)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
