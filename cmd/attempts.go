package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var attemptsCmd = &cobra.Command{
	Use:   "attempts <case-id>",
	Short: "List a student's attempts at a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().ListAttempts(cmd.Context(), student, args[0])
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Printf("No attempts by %q at case %q.\n", student, args[0])
			return nil
		}

		fmt.Printf("%-3s  %-19s  %-5s  %-8s  %-9s  %s\n",
			"#", "Started", "Score", "Result", "Time", "Messages")
		fmt.Println(strings.Repeat("─", 64))
		for _, a := range attempts {
			score := "-"
			result := "abandoned"
			if a.Score != nil {
				score = fmt.Sprintf("%d", *a.Score)
				result = "fail"
				if a.IsPassing {
					result = "pass"
				}
			}
			fmt.Printf("%-3d  %-19s  %-5s  %-8s  %-9s  %d\n",
				a.AttemptNumber,
				a.StartedAt.Local().Format("2006-01-02 15:04:05"),
				score,
				result,
				(time.Duration(a.TotalTimeSeconds) * time.Second).String(),
				a.TotalMessages,
			)
		}
		return nil
	},
}

func init() {
	attemptsCmd.Flags().StringP("student", "s", "student", "Student identifier")
}
