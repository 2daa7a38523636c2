// Package cmd implements the adventurectl command tree: a terminal client
// for the adventure tracker that runs the same catalog reconciliation as the
// web app and keeps a local snapshot when the backend is unreachable.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/adventures/internal/apiclient"
	"github.com/dmitrijs2005/adventures/internal/catalog"
	"github.com/dmitrijs2005/adventures/internal/logging"
	"github.com/dmitrijs2005/adventures/internal/tracker"
)

var (
	apiURL       string
	token        string
	fallbackFile string

	client *apiclient.Client
)

var rootCmd = &cobra.Command{
	Use:   "adventurectl",
	Short: "Track visited parks, states and countries from the terminal",
	Long: `adventurectl keeps the family adventure checklists: Washington state
parks, US states, national parks and countries.

It talks to the adventures API when one is configured and falls back to a
local snapshot file when the backend is unreachable, so a visit recorded
offline is never lost.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		c, err := apiclient.NewClient(apiURL, token)
		if err != nil {
			return err
		}
		client = c
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiURL, "api", "a", os.Getenv("ADVENTURES_API"), "base URL of the adventures API")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", os.Getenv("ADVENTURES_TOKEN"), "bearer token for admin operations")
	rootCmd.PersistentFlags().StringVarP(&fallbackFile, "fallback-file", "f", defaultFallbackFile(), "local snapshot file used when the backend is unreachable")
}

func defaultFallbackFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "adventures-snapshot.json"
	}
	return filepath.Join(home, ".adventures", "snapshot.json")
}

// cliLogger keeps structured output off stdout so command output stays
// parseable; only warnings and errors surface.
func cliLogger() logging.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return logging.NewSlogLogger(slog.New(h))
}

// loadEngine builds the reconciliation engine over the API client and the
// local snapshot, and loads it.
func loadEngine(ctx context.Context) *tracker.Engine {
	snapshots := tracker.NewSnapshotStore(fallbackFile)
	engine := tracker.NewEngine(catalog.Default(), client, client, snapshots, cliLogger())
	engine.Load(ctx)
	return engine
}
