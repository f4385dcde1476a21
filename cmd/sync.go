package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize sessions with the configured remote",
	Long:  "Sync mirrors the whole session collection to the remote configured via LEARNPATH_SYNC_URL. Conflicts resolve last-write-wins on the newest session timestamp.",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the local session collection to the remote",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSync(cmd, func(ctx context.Context, m *store.SyncManager, owner string) error {
			if err := m.Push(ctx, owner); err != nil {
				return fmt.Errorf("push: %w", err)
			}
			m.Wait()
			fmt.Println("Pushed. Status:", m.Status())
			return nil
		})
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull remote sessions, replacing local data when the remote is newer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSync(cmd, func(ctx context.Context, m *store.SyncManager, owner string) error {
			sessions, err := m.Load(ctx, owner)
			if err != nil {
				return fmt.Errorf("pull: %w", err)
			}
			fmt.Printf("Done. %d session(s) locally. Status: %s\n", len(sessions), m.Status())
			return nil
		})
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the sync configuration and status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSync(cmd, func(_ context.Context, m *store.SyncManager, owner string) error {
			fmt.Println("Owner: ", owner)
			fmt.Println("Status:", m.Status())
			if m.Status() == store.SyncLocalOnly {
				fmt.Println("Set LEARNPATH_SYNC_URL (and LEARNPATH_SYNC_TOKEN) to enable a remote mirror.")
			}
			return nil
		})
	},
}

func withSync(cmd *cobra.Command, fn func(context.Context, *store.SyncManager, string) error) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(context.Background(), newSyncManager(s), resolveOwner(cmd))
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncStatusCmd)
}
