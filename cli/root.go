// Package cli implements the deckgenie CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"deckgenie/config"
	"deckgenie/session"
)

var configPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "deckgenie",
	Short: "Generate B2B sales pitch decks",
	Long:  "Turns structured pitch content into persona-styled PowerPoint decks, with stock photos, image caching, and deck replay.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ~/.deckgenie/config.json)")
}

func loadConfig() config.Config {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default()
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
	}
	return cfg
}

func dataDir(cfg config.Config) string {
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".deckgenie")
}

func openStore(cfg config.Config) (session.Store, error) {
	return session.NewSQLiteStore(filepath.Join(dataDir(cfg), "session.db"))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
