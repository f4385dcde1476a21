package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "Adaptive learning paths from your own material",
	Long:  "Learnpath turns any source material into an adaptive learning path: a unit graph with mastery quizzes, weakness tracking and targeted remediation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLearn(cmd)
	},
}

func Execute() error {
	// A .env next to the binary is the simplest way to carry API keys.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNPATH_DB env var)")
	rootCmd.PersistentFlags().String("owner", "", "Owner id for stored sessions (overrides LEARNPATH_OWNER env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveOwner returns the owner id from --owner, LEARNPATH_OWNER, or
// the default.
func resolveOwner(cmd *cobra.Command) string {
	if o, _ := cmd.Flags().GetString("owner"); o != "" {
		return o
	}
	if o := os.Getenv("LEARNPATH_OWNER"); o != "" {
		return o
	}
	return "local"
}

// openStore opens the local database for a subcommand.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newSyncManager builds the sync manager, attaching the remote client
// only when a sync endpoint is configured.
func newSyncManager(s *store.Store) *store.SyncManager {
	var remote store.RemoteClient
	if url := os.Getenv("LEARNPATH_SYNC_URL"); url != "" {
		remote = store.NewHTTPRemoteClient(store.RemoteConfig{
			BaseURL: url,
			Token:   os.Getenv("LEARNPATH_SYNC_TOKEN"),
		})
	}
	return store.NewSyncManager(s.SessionRepo(), remote)
}
