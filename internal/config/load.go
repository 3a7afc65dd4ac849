package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading
	if err := godotenv.Load(); err != nil {
		// ignore if .env is missing
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search the working directory for benchgate.yaml.
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchgate")
	}

	viper.SetEnvPrefix("BENCHGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Defaults match the criterion layout and the stated performance
	// targets; without any config file the tool behaves exactly as a
	// hard-coded gate would.
	viper.SetDefault("results_dir", filepath.Join("target", "criterion"))
	viper.SetDefault("bench_command", "cargo bench --bench sandbox_benchmarks")
	viper.SetDefault("thresholds.startup_ms", 2000.0)
	viper.SetDefault("thresholds.latency_ms", 100.0)
	viper.SetDefault("thresholds.memory_percent", 10.0)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Thresholds reports the configured gating limits.
func Thresholds() (startupMs, latencyMs, memoryPercent float64) {
	return viper.GetFloat64("thresholds.startup_ms"),
		viper.GetFloat64("thresholds.latency_ms"),
		viper.GetFloat64("thresholds.memory_percent")
}
