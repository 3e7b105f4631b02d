package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"galleria/internal/config"
	"galleria/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the asset gallery over HTTP",
	Long: `Starts an HTTP server that renders the gallery from the current state
of the asset folders on every page load and serves the asset files
themselves for download.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Bool("watch", false, "reload connected browsers when asset folders change")
	serveCmd.Flags().Bool("open", false, "open the browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun `galleria init` to create a config file", err)
	}

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")
	open, _ := cmd.Flags().GetBool("open")

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		AssetsDir: cfg.AssetsDir,
		Title:     cfg.Title,
		Exclude:   cfg.Exclude,
		Watch:     watch,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Printf("Serving %s at %s\n", cfg.Title, url)
	fmt.Println("Press Ctrl+C to stop.")

	if open || cfg.Open {
		go openBrowser(url)
	}

	// Shut down cleanly on Ctrl+C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serving gallery: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
