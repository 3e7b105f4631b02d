package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"galleria/internal/config"
	"galleria/internal/export"
	"galleria/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the gallery as a static site",
	Long: `Renders the gallery to a self-contained static site: index.html, the
minified stylesheet and script, and a copy of every asset file. The
output directory can be served by any static file host.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "dist", "output directory for the static site")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun `galleria init` to create a config file", err)
	}

	outputDir, _ := cmd.Flags().GetString("output")

	exporter := &export.Exporter{
		AssetsDir: cfg.AssetsDir,
		OutputDir: outputDir,
		Title:     cfg.Title,
		Exclude:   cfg.Exclude,
		Reporter:  progress.NewReporter(),
	}

	written, err := exporter.Run()
	if err != nil {
		return fmt.Errorf("exporting gallery: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d files)\n", outputDir, written)
	return nil
}
