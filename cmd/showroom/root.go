package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "showroom",
	Short: "Showroom is a vehicle configurator service",
	Long: `Showroom runs the vehicle configuration wizard as an HTTP service:
a step-gated configurator with catalog-backed pricing and validation,
live updates over SSE, and a dealer order queue.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ./showroom.yaml)")
}
