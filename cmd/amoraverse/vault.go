package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amoraverse/amoraverse/internal/app"
	"github.com/amoraverse/amoraverse/internal/config"
	"github.com/amoraverse/amoraverse/internal/vault"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage the poem vault",
	Long:  `List, search and edit poems saved in the local vault.`,
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved poems, newest first",
	RunE:  runVaultList,
}

var vaultSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search poems by text, title or tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultSearch,
}

var vaultShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print one poem in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultShow,
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a poem",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultDelete,
}

var vaultFavoriteCmd = &cobra.Command{
	Use:   "favorite [id]",
	Short: "Toggle a poem's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultFavorite,
}

var vaultTagsCmd = &cobra.Command{
	Use:   "tags [id] [tag...]",
	Short: "Replace a poem's tags",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVaultTags,
}

var vaultTitleCmd = &cobra.Command{
	Use:   "title [id] [title]",
	Short: "Rename a poem",
	Args:  cobra.ExactArgs(2),
	RunE:  runVaultTitle,
}

func init() {
	vaultCmd.AddCommand(vaultListCmd)
	vaultCmd.AddCommand(vaultSearchCmd)
	vaultCmd.AddCommand(vaultShowCmd)
	vaultCmd.AddCommand(vaultDeleteCmd)
	vaultCmd.AddCommand(vaultFavoriteCmd)
	vaultCmd.AddCommand(vaultTagsCmd)
	vaultCmd.AddCommand(vaultTitleCmd)
	rootCmd.AddCommand(vaultCmd)
}

func withVault(fn func(ctx context.Context, a *app.App) error) error {
	ctx := context.Background()

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

	return fn(ctx, a)
}

func printPoemLine(rec vault.PoemRecord) {
	marker := " "
	if rec.Favorite {
		marker = "*"
	}
	title := rec.Title
	if title == "" {
		title = firstLine(rec.Text)
	}
	fmt.Printf("%s %s  %s  [%s]", marker, rec.ID, title, rec.Source)
	if len(rec.Tags) > 0 {
		fmt.Printf("  #%s", strings.Join(rec.Tags, " #"))
	}
	fmt.Println()
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	if len(line) > 60 {
		line = line[:60] + "..."
	}
	return line
}

func runVaultList(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		poems := a.Vault.All()
		if len(poems) == 0 {
			fmt.Println("The vault is empty.")
			return nil
		}
		for _, rec := range poems {
			printPoemLine(rec)
		}
		return nil
	})
}

func runVaultSearch(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		poems := a.Vault.Search(args[0])
		if len(poems) == 0 {
			fmt.Println("No poems matched.")
			return nil
		}
		for _, rec := range poems {
			printPoemLine(rec)
		}
		return nil
	})
}

func runVaultShow(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		rec, found := a.Vault.Get(args[0])
		if !found {
			return fmt.Errorf("no poem with id %s", args[0])
		}
		if rec.Title != "" {
			fmt.Printf("=== %s ===\n\n", rec.Title)
		}
		fmt.Println(rec.Text)
		fmt.Println()
		fmt.Printf("Saved: %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("Source: %s\n", rec.Source)
		if rec.Style != "" {
			fmt.Printf("Style: %s (%s)\n", rec.Style, rec.Tone)
		}
		if len(rec.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(rec.Tags, ", "))
		}
		if rec.AssociatedImage != "" {
			fmt.Printf("Image: %s\n", rec.AssociatedImage)
		}
		if rec.Favorite {
			fmt.Println("Favorite: yes")
		}
		return nil
	})
}

func runVaultDelete(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		if _, found := a.Vault.Get(args[0]); !found {
			return fmt.Errorf("no poem with id %s", args[0])
		}
		if err := a.Vault.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	})
}

func runVaultFavorite(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		if err := a.Vault.ToggleFavorite(ctx, args[0]); err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		rec, found := a.Vault.Get(args[0])
		if !found {
			return fmt.Errorf("no poem with id %s", args[0])
		}
		if rec.Favorite {
			fmt.Println("Marked as favorite.")
		} else {
			fmt.Println("Removed from favorites.")
		}
		return nil
	})
}

func runVaultTags(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		if _, found := a.Vault.Get(args[0]); !found {
			return fmt.Errorf("no poem with id %s", args[0])
		}
		if err := a.Vault.UpdateTags(ctx, args[0], args[1:]); err != nil {
			return fmt.Errorf("update tags: %w", err)
		}
		fmt.Println("Tags updated.")
		return nil
	})
}

func runVaultTitle(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		if _, found := a.Vault.Get(args[0]); !found {
			return fmt.Errorf("no poem with id %s", args[0])
		}
		if err := a.Vault.UpdateTitle(ctx, args[0], args[1]); err != nil {
			return fmt.Errorf("update title: %w", err)
		}
		fmt.Println("Title updated.")
		return nil
	})
}
