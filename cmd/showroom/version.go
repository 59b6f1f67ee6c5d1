package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/showroomhq/showroom"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of showroom",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("showroom version %s\n", showroom.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
