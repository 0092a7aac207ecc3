package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a student's attempt history",
	Long:  "Deletes stored attempts for a student, optionally scoped to one case. Attempt numbering is never reused: the next attempt continues from the highest number ever issued.",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		caseID, _ := cmd.Flags().GetString("case")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			scope := "ALL cases"
			if caseID != "" {
				scope = fmt.Sprintf("case %q", caseID)
			}
			fmt.Printf("This deletes every attempt by %q for %s. Continue? [y/N] ", student, scope)
			var answer string
			_, _ = fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.AttemptRepo().DeleteAttempts(cmd.Context(), student, caseID)
		if err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		fmt.Printf("Deleted %d attempt(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("student", "s", "student", "Student identifier")
	resetCmd.Flags().StringP("case", "c", "", "Limit deletion to one case ID")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
