package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inkwell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkwell version %s\n", inkwell.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
