package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all sessions as a portable backup payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		payload, err := store.ExportBackup(ctx, s.SessionRepo(), resolveOwner(cmd))
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(payload), 0600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Println("Backup written to", out)
			return nil
		}
		fmt.Println(payload)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [payload]",
	Short: "Import a backup payload, replacing all local sessions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readPayload(cmd, args)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		b, err := store.ImportBackup(ctx, s.SessionRepo(), payload)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("Restored %d session(s) for owner %q.\n", len(b.Sessions), b.Owner)
		return nil
	},
}

func readPayload(cmd *cobra.Command, args []string) (string, error) {
	if in, _ := cmd.Flags().GetString("in"); in != "" {
		b, err := os.ReadFile(in)
		if err != nil {
			return "", fmt.Errorf("read backup: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide a payload argument or --in <file>")
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Write the payload to a file instead of stdout")
	importCmd.Flags().StringP("in", "i", "", "Read the payload from a file")
}
