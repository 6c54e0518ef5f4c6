package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Restore notes from an export artifact",
	Long:  `Import reads a JSON array produced by export and upserts every note it contains, keeping original IDs and dates.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		count, err := service.ImportNotes(context.Background(), args[0])
		if err != nil {
			fatal("Failed to import notes", err)
		}

		fmt.Printf("Imported %d notes\n", count)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
