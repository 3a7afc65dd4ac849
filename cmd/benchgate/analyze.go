package main

import (
	"errors"
	"fmt"

	"benchgate/internal/benchmark"
	"benchgate/internal/config"
	"benchgate/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errTargetsNotMet = errors.New("some performance requirements not met")

// analyzeCmd represents the analyze command. The root command runs the
// same analysis, so `benchgate` and `benchgate analyze` are equivalent.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check benchmark results against performance thresholds",
	Long: `Loads criterion estimates from the results directory and checks
application startup time and tool execution latency against their
thresholds. Memory overhead and concurrent operation benchmarks are
reported for information only and never fail the run.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	resultsDir := viper.GetString("results_dir")

	fmt.Fprintln(out, ui.Banner("Performance Benchmark Analysis"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Loading benchmark results...")
	results, err := benchmark.Load(resultsDir)
	if err != nil {
		if errors.Is(err, benchmark.ErrMissingResultsDir) {
			fmt.Fprintln(cmd.ErrOrStderr(), "ERROR: Benchmark results not found.")
			fmt.Fprintf(cmd.ErrOrStderr(), "Please run benchmarks first: %s\n", viper.GetString("bench_command"))
		}
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("%w in %s", benchmark.ErrNoResults, resultsDir)
	}

	fmt.Fprintf(out, "Found %d benchmark results\n\n", len(results))

	thresholds := benchmark.Thresholds{}
	thresholds.StartupMs, thresholds.LatencyMs, thresholds.MemoryPercent = config.Thresholds()

	startup := benchmark.AnalyzeStartup(results, thresholds)
	latency := benchmark.AnalyzeLatency(results, thresholds)
	memory := benchmark.AnalyzeMemory(results, thresholds)
	concurrency := benchmark.AnalyzeConcurrency(results)

	sections := []struct {
		title  string
		report benchmark.CategoryReport
	}{
		{"Application Startup Time", startup},
		{"Tool Execution Latency", latency},
		{"Memory Overhead", memory},
		{"Concurrent Operations", concurrency},
	}
	for i, s := range sections {
		fmt.Fprintln(out, ui.Section(i+1, s.title))
		fmt.Fprintln(out, ui.RenderCategory(s.report))
		fmt.Fprintln(out)
	}

	// Only startup and latency gate the run; the memory and concurrency
	// categories are informational.
	allPassed := startup.Passed && latency.Passed

	fmt.Fprintln(out, ui.RenderSummary(allPassed, thresholds))

	if !allPassed {
		return errTargetsNotMet
	}
	return nil
}
