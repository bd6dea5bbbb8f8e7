package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amoraverse/amoraverse/internal/app"
	"github.com/amoraverse/amoraverse/internal/config"
	"github.com/amoraverse/amoraverse/internal/generator"
	"github.com/amoraverse/amoraverse/internal/vault"
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a poem from a prompt",
	Long: `Generate a poem from a free-text prompt.

Example:
  amoraverse generate "the rainy evening we met" --style sonnet --tone 80`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	generateStyle string
	generateTone  int
	generateSave  bool
	generateTitle string
)

func init() {
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "poem style (default from config)")
	generateCmd.Flags().IntVar(&generateTone, "tone", -1, "tone slider 0-100 (default from config)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "save the poem to the vault")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "title to save the poem under")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	prompt := args[0]

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

	style := generateStyle
	if style == "" {
		style = cfg.DefaultStyle
	}
	tone := generateTone
	if tone < 0 {
		tone = cfg.DefaultTone
	}

	res, err := a.Generator.Generate(ctx, generator.Request{
		Prompt:   prompt,
		Style:    style,
		Tone:     tone,
		Language: cfg.Language,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if res.Label != "" {
		fmt.Printf("%s %s\n\n", res.Emoji, res.Label)
	}
	fmt.Println(res.Poem)
	fmt.Println()
	fmt.Printf("(%s", res.ModelUsed)
	if res.Tone != "" {
		fmt.Printf(", %s %s", res.Style, res.Tone)
	}
	fmt.Println(")")

	if generateSave {
		title := generateTitle
		if title == "" && res.Label != "" {
			title = res.Label
		}
		id, err := a.Vault.Save(ctx, res.Poem, res.Source, &vault.Metadata{
			Title: title,
			Style: res.Style,
			Tone:  res.Tone,
		})
		if err != nil {
			// The poem is already printed; a failed durable write should
			// not look like a failed generation.
			fmt.Printf("\nCould not write to storage: %v\n", err)
		} else {
			fmt.Printf("\nSaved to vault: %s\n", id)
		}
	}

	return nil
}
