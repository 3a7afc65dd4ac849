package main

import (
	"fmt"
	"os"

	"benchgate/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "benchgate",
	Short: "Gate benchmark results against performance targets",
	Long: `benchgate reads criterion benchmark estimates and checks the measured
mean times against fixed performance thresholds, printing a pass/fail
report. The process exits 0 when every required target is met and 1
otherwise, so it slots directly into CI pipelines.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. It is called once from main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	// Default behavior: run the analysis.
	rootCmd.RunE = runAnalyze
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchgate.yaml)")
	rootCmd.PersistentFlags().String("results-dir", "", "Benchmark results directory (default is target/criterion)")

	viper.BindPFlag("results_dir", rootCmd.PersistentFlags().Lookup("results-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
}
