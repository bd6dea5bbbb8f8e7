package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amoraverse/amoraverse/internal/app"
	"github.com/amoraverse/amoraverse/internal/config"
	"github.com/amoraverse/amoraverse/internal/upload"
	"github.com/amoraverse/amoraverse/internal/vault"
)

var photoCmd = &cobra.Command{
	Use:   "photo [image file]",
	Short: "Generate a poem inspired by a photo",
	Long: `Generate a poem from an image file. The image itself is only
validated; the poem is built from an optional description of the moment.

Example:
  amoraverse photo beach.jpg --description "our first trip together" --save`,
	Args: cobra.ExactArgs(1),
	RunE: runPhoto,
}

var (
	photoDescription string
	photoSave        bool
	photoTitle       string
)

func init() {
	photoCmd.Flags().StringVar(&photoDescription, "description", "", "what the photo shows")
	photoCmd.Flags().BoolVar(&photoSave, "save", false, "save the poem to the vault")
	photoCmd.Flags().StringVar(&photoTitle, "title", "", "title to save the poem under")
	rootCmd.AddCommand(photoCmd)
}

func runPhoto(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	if err := upload.ValidateImage(data); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	res, err := a.Generator.GenerateFromPhoto(ctx, photoDescription)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Println(res.Poem)
	fmt.Printf("\n(from %s, %s)\n", path, upload.FormatSize(int64(len(data))))

	if photoSave {
		id, err := a.Vault.Save(ctx, res.Poem, res.Source, &vault.Metadata{
			Title:           photoTitle,
			AssociatedImage: path,
		})
		if err != nil {
			fmt.Printf("\nCould not write to storage: %v\n", err)
		} else {
			fmt.Printf("\nSaved to vault: %s\n", id)
		}
	}

	return nil
}
