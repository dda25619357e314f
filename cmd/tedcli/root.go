package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var costConfigPath string

var rootCmd = &cobra.Command{
	Use:   "tedcli",
	Short: "Compute and verify tree edit distances between bracket-notation trees",
	Long: `tedcli computes APTED tree edit distance between two trees given in
bracket notation ({label{child1}{child2}...}), verifies an engine
against a correctness fixture, and benchmarks throughput on a
large fixture.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&costConfigPath, "cost-config", "", "path to a YAML/TOML cost model config (default: unit cost)")

	rootCmd.AddCommand(newDistanceCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newBenchCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadCostModel resolves the process-wide cost model: the unit-cost
// model by default, or the config named by --cost-config.
func loadCostModel() (*LabelCostConfig, error) {
	if costConfigPath == "" {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(costConfigPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("tedcli: reading cost config: %w", err)
	}

	var cfg LabelCostConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("tedcli: parsing cost config: %w", err)
	}
	return &cfg, nil
}
