// Package cmd provides the CLI commands for construct-cost.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"construct-cost/internal/config"
	"construct-cost/internal/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "construct-cost",
	Short: "Quantity derivation and earned-value simulation for construction sites",
	Long: `construct-cost derives engineering quantities from drawing measurements,
computes structural material takeoffs, simulates time-phased earned value
over a fixed network schedule, and auto-numbers work breakdown structures.

Examples:
  construct-cost derive --item terra_trench --qty 120 --unit m --param width=2 --param depth=1.5
  construct-cost material --length 10 --width 5 --height 3 --rebar D16 --rebar-length 1000 --project 본관동
  construct-cost simulate --day 150
  construct-cost evm --pv 100 --ev 50 --ac 25
  construct-cost wbs --site site.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.construct-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, yaml)")

	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(materialCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(evmCmd)
	rootCmd.AddCommand(wbsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// resolveFormat returns the requested output format, falling back to
// the configured default.
func resolveFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	return config.Get().Output.DefaultFormat
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("construct-cost version 0.1.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
