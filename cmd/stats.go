package cmd

import (
	"fmt"
	"strings"

	"github.com/casetalk/casetalk/internal/attempt"
	"github.com/casetalk/casetalk/internal/learningcurve"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <case-id>",
	Short: "Show a student's learning curve for a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.AttemptRepo().ListAttempts(cmd.Context(), student, args[0])
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		attempts := make([]*attempt.Attempt, 0, len(records))
		for _, r := range records {
			attempts = append(attempts, attempt.FromData(r))
		}
		curve := learningcurve.Analyze(learningcurve.PointsFromAttempts(attempts))

		if len(curve.Points) == 0 {
			fmt.Printf("No scored attempts by %q at case %q yet.\n", student, args[0])
			return nil
		}

		fmt.Printf("Learning curve for %q at %q\n", student, args[0])
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-3s  %-10s  %-5s  %-9s  %s\n", "#", "Date", "Score", "Minutes", "")
		for _, p := range curve.Points {
			bar := strings.Repeat("█", p.Score/5)
			fmt.Printf("%-3d  %-10s  %-5d  %-9.1f  %s\n",
				p.AttemptNumber, p.Date.Local().Format("2006-01-02"), p.Score, p.TimeSpentMinutes, bar)
		}

		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("Trend: %s\n", curve.Trend)
		if curve.PredictedNextScore != nil {
			fmt.Printf("Predicted next score: %d\n", *curve.PredictedNextScore)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("student", "s", "student", "Student identifier")
}
