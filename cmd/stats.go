package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnpath/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics across saved sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		sessions, err := s.SessionRepo().ListByOwner(ctx, resolveOwner(cmd))
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No learning activity recorded yet.")
			return nil
		}

		var b store.BehaviorStats
		var rewards int
		for _, sess := range sessions {
			sb := sess.Data.Behavior
			b.QuizzesTaken += sb.QuizzesTaken
			b.QuizzesPassed += sb.QuizzesPassed
			b.MercyCompletions += sb.MercyCompletions
			b.RemedialsInserted += sb.RemedialsInserted
			b.UnitsViewed += sb.UnitsViewed
			b.TimeSpentSeconds += sb.TimeSpentSeconds
			rewards += len(sess.Data.Rewards)
		}

		fmt.Printf("Sessions:           %d\n", len(sessions))
		fmt.Println(strings.Repeat("─", 28))
		fmt.Printf("Units viewed:       %d\n", b.UnitsViewed)
		fmt.Printf("Quizzes taken:      %d\n", b.QuizzesTaken)
		fmt.Printf("Quizzes passed:     %d\n", b.QuizzesPassed)
		fmt.Printf("Mercy completions:  %d\n", b.MercyCompletions)
		fmt.Printf("Remedial units:     %d\n", b.RemedialsInserted)
		fmt.Printf("Rewards earned:     %d\n", rewards)
		fmt.Printf("Time spent:         %s\n", formatDuration(b.TimeSpentSeconds))
		return nil
	},
}

func formatDuration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
