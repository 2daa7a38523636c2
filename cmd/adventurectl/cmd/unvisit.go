package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var unvisitCmd = &cobra.Command{
	Use:   "unvisit <category> <name>",
	Short: "Remove a recorded visit",
	Long: `Reset an item to unvisited. The stored record is overwritten with a
minimal unvisited one; the date, memories and photo references are dropped.

Example:
  adventurectl unvisit countries Japan`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		engine := loadEngine(ctx)
		item, err := engine.RemoveVisit(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("removed visit to %s\n", item.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unvisitCmd)
}
