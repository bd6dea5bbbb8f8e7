package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/amoraverse/amoraverse/internal/app"
	"github.com/amoraverse/amoraverse/internal/vault"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vault statistics",
	Long:  `Display statistics about saved poems, favorites and tags.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	return withVault(func(ctx context.Context, a *app.App) error {
		stats := a.Vault.Stats()

		fmt.Println("=== AmoraVerse Vault ===")
		fmt.Println()
		fmt.Printf("Database: %s\n", a.Config.DatabasePath)
		fmt.Println()
		fmt.Printf("Poems: %d\n", stats.Total)
		fmt.Printf("Favorites: %d\n", stats.Favorites)
		fmt.Printf("Unique tags: %d\n", len(stats.UniqueTags))
		fmt.Println()

		if len(stats.BySource) > 0 {
			fmt.Println("By source:")
			sources := make([]string, 0, len(stats.BySource))
			for src := range stats.BySource {
				sources = append(sources, string(src))
			}
			sort.Strings(sources)
			for _, src := range sources {
				fmt.Printf("  %s: %d\n", src, stats.BySource[vault.Source(src)])
			}
			fmt.Println()
		}

		if len(stats.Recent) > 0 {
			fmt.Println("Recent:")
			for _, rec := range stats.Recent {
				printPoemLine(rec)
			}
		}

		return nil
	})
}
