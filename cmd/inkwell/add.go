package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell"
)

var (
	addID      string
	addTitle   string
	addContent string
	addColor   int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create or update a note",
	Long: `Add saves a note (upsert). Without --id a new note is created with a
generated ID; with --id an existing note is overwritten. Pass "-" as
--content to read the body from stdin.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if addTitle == "" {
			fmt.Println("Error: --title is required")
			cmd.Usage()
			os.Exit(1)
		}

		content := addContent
		if content == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		color := addColor
		if !cmd.Flags().Changed("color") {
			color = loadConfig().DefaultColor
		}

		service, err := newService()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		n, err := service.SaveNote(context.Background(), inkwell.Note{
			ID:      addID,
			Title:   addTitle,
			Content: content,
			Color:   color,
		})
		if err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note saved: %s\n", n.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addID, "id", "", "Note ID (empty creates a new note)")
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note body (\"-\" reads stdin)")
	addCmd.Flags().IntVar(&addColor, "color", 0, "Packed display color")
}
