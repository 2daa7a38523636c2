package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/adventures/internal/server/auth"
)

var (
	tokenSecret   string
	tokenValidity time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token <email>",
	Short: "Mint a bearer token for admin operations",
	Long: `Mint a signed token for the given email. The secret must match the
server's; the email must be on the server's admin allow-list for mutating
requests to pass.

Example:
  adventurectl token mom@example.com --secret $SECRET_KEY`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := auth.GenerateToken(args[0], []byte(tokenSecret), tokenValidity)
		if err != nil {
			return err
		}
		fmt.Println(t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "signing secret shared with the server")
	tokenCmd.Flags().DurationVar(&tokenValidity, "validity", 24*time.Hour, "how long the token stays valid")
	_ = tokenCmd.MarkFlagRequired("secret")
}
