package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved learning sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		owner := resolveOwner(cmd)
		sessions, err := s.SessionRepo().ListByOwner(ctx, owner)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No saved sessions. Run 'learnpath learn' to start one.")
			return nil
		}

		fmt.Printf("%-10s  %-40s  %8s  %s\n", "ID", "Title", "Progress", "Modified")
		fmt.Println(strings.Repeat("─", 84))
		for _, sess := range sessions {
			fmt.Printf("%-10s  %-40s  %7.0f%%  %s\n",
				truncate(sess.ID, 10),
				truncate(sess.Title, 40),
				sess.ProgressPercent,
				sess.LastModified.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}
