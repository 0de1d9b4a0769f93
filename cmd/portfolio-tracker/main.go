// Package main provides the CLI entry point for portfolio-tracker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/config"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/logging"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/output"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/report"
)

var (
	outputPath     string
	categoriesFile string
	percentBasis   string
	logLevel       string
	quiet          bool
	jsonPath       string
	pretty         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfolio-tracker [config.yaml]",
		Short: "Aggregate brokerage exports into a categorized portfolio report",
		Long: `portfolio-tracker reads brokerage export files, sums holdings per symbol
across all sources, groups them into categories and writes an Excel report
with a pie chart.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (overrides output_file)")
	rootCmd.Flags().StringVar(&categoriesFile, "categories", "", "Additional YAML category file")
	rootCmd.Flags().StringVar(&percentBasis, "percent-basis", "", "Percentage denominator: total or exclude-first")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the category breakdown")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Also write the run result as JSON to this path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}

	sources, err := cfg.Descriptors()
	if err != nil {
		return err
	}
	categories, err := cfg.CategoryTable()
	if err != nil {
		return err
	}

	opts := tracker.DefaultOptions()
	opts.Sources = sources
	opts.Categories = categories
	opts.Basis = cfg.Basis()
	opts.Logger = log

	res, err := tracker.Run(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	chart := report.DefaultChartLayout()
	chart.Title = cfg.ChartTitle
	rep := res.Report(cfg.SheetName, cfg.Currency, chart)

	sinks := []tracker.ReportSink{report.NewWorkbook(cfg.OutputFile)}
	if !quiet {
		sinks = append(sinks, report.NewConsole(cmd.OutOrStdout()))
	}
	if err := tracker.Emit(rep, sinks...); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Info().Str("path", cfg.OutputFile).Msg("Report written")

	if jsonPath != "" {
		jsonData, err := output.ToJSON(res, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

// applyFlags layers command-line flags over the loaded configuration.
func applyFlags(cfg *config.Config) error {
	if outputPath != "" {
		cfg.OutputFile = outputPath
	}
	if percentBasis != "" {
		cfg.PercentBasis = percentBasis
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if categoriesFile != "" {
		cfg.CategoriesFile = categoriesFile
		if err := cfg.LoadCategoriesFile(); err != nil {
			return err
		}
	}
	return cfg.Validate()
}
