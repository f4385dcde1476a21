package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved sessions for the current owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := resolveOwner(cmd)

		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Printf("This deletes every saved session for owner %q. Type 'yes' to confirm: ", owner)
			in := bufio.NewScanner(os.Stdin)
			if !in.Scan() || strings.TrimSpace(in.Text()) != "yes" {
				fmt.Println("Nothing deleted.")
				return nil
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.SessionRepo().DeleteAll(context.Background(), owner); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		fmt.Println("All sessions deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
