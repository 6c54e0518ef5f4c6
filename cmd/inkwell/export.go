package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all notes as a single JSON array",
	Long: `Export aggregates every note, most recent first, into notes_export.json
inside the vault and prints the artifact's path. Hand the file to whatever
share mechanism you like.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		path, err := service.ExportNotes(context.Background())
		if err != nil {
			fatal("Failed to export notes", err)
		}

		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
