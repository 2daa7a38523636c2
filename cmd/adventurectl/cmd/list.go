package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/adventures/internal/catalog"
	"github.com/dmitrijs2005/adventures/internal/models"
)

var (
	listVisited   bool
	listUnvisited bool
	listSearch    string
)

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List checklist items, reconciled with saved state",
	Long: `List the items of one category, or of every category when none is
given. Each line shows a visited marker, the name and, when recorded, the
visit date.

Examples:
  adventurectl list countries
  adventurectl list us-states --visited
  adventurectl list --search rainier`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		engine := loadEngine(ctx)

		categories := catalog.Default().Categories()
		sort.Strings(categories)
		if len(args) == 1 {
			if engine.Items(args[0]) == nil {
				return fmt.Errorf("unknown category %q (one of: %s)", args[0], strings.Join(categories, ", "))
			}
			categories = args[0:1]
		}

		for _, category := range categories {
			printCategory(category, engine.Items(category))
		}
		return nil
	},
}

func printCategory(category string, items []models.Adventure) {
	visited := 0
	fmt.Printf("%s:\n", category)
	for _, item := range items {
		if item.Visited {
			visited++
		}
		if listVisited && !item.Visited {
			continue
		}
		if listUnvisited && item.Visited {
			continue
		}
		if listSearch != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(listSearch)) {
			continue
		}
		marker := " "
		if item.Visited {
			marker = "x"
		}
		line := fmt.Sprintf("  [%s] %s", marker, item.Name)
		if item.DateVisited != "" {
			line += fmt.Sprintf(" (%s)", item.DateVisited)
		}
		fmt.Println(line)
	}
	fmt.Printf("  visited %d of %d\n", visited, len(items))
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listVisited, "visited", false, "only show visited items")
	listCmd.Flags().BoolVar(&listUnvisited, "unvisited", false, "only show unvisited items")
	listCmd.Flags().StringVar(&listSearch, "search", "", "only show items whose name contains this text")
}
