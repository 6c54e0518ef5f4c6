package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show prints a note's body by ID, or the full record with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		service, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		n, err := service.GetNote(context.Background(), id)
		if err != nil {
			fatal("Failed to read note", err)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(n); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Println(n.Title)
		fmt.Println(n.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
