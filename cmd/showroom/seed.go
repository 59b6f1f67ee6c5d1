package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showroomhq/showroom/internal/adapters/sqlite"
	"github.com/showroomhq/showroom/internal/catalog"
	"github.com/showroomhq/showroom/internal/config"
)

var seedCmd = &cobra.Command{
	Use:   "seed <catalog.yaml>",
	Short: "Load a YAML catalog into the database",
	Long:  `Replaces the vehicle catalog wholesale with the contents of a YAML seed file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		seed, err := catalog.LoadSeed(args[0])
		if err != nil {
			return err
		}

		backend, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open catalog database: %w", err)
		}
		defer backend.Close()

		if err := backend.Catalog().Seed(cmd.Context(), seed); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}

		fmt.Printf("seeded %d vehicles, %d trims, %d colors, %d packages, %d options\n",
			len(seed.Vehicles), len(seed.Trims), len(seed.Colors), len(seed.Packages), len(seed.Options))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
