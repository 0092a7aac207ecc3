package cmd

import (
	"fmt"
	"strings"

	"github.com/casetalk/casetalk/internal/casefile"
	"github.com/casetalk/casetalk/internal/scenario"
	"github.com/casetalk/casetalk/internal/store"
	"github.com/spf13/cobra"
)

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Author and manage case scenarios",
}

var caseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored cases",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cases, err := st.CaseRepo().ListCases(cmd.Context())
		if err != nil {
			return fmt.Errorf("list cases: %w", err)
		}
		if len(cases) == 0 {
			fmt.Println("No cases stored. Import one with: casetalk case import <file>")
			return nil
		}

		fmt.Printf("%-24s  %-7s  %-10s  %-6s  %s\n", "ID", "Version", "Status", "Nodes", "Title")
		fmt.Println(strings.Repeat("─", 80))
		for _, c := range cases {
			fmt.Printf("%-24s  %-7d  %-10s  %-6d  %s\n", c.ID, c.Version, c.Status, len(c.Nodes), c.Title)
		}
		return nil
	},
}

var caseValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a case JSON file without storing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := casefile.Load(args[0])
		if err != nil {
			return err
		}
		return reportValidation(c)
	},
}

var caseImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and store a case JSON file as a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := casefile.Load(args[0])
		if err != nil {
			return err
		}
		if err := reportValidation(c); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CaseRepo().SaveCase(cmd.Context(), c); err != nil {
			return fmt.Errorf("save case: %w", err)
		}
		fmt.Printf("Imported %q version %d (%s)\n", c.ID, c.Version, c.Status)
		return nil
	},
}

var caseExportCmd = &cobra.Command{
	Use:   "export <case-id> <file>",
	Short: "Write the latest stored version of a case to a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := st.CaseRepo().GetCase(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load case: %w", err)
		}
		if c == nil {
			return fmt.Errorf("case %q not found", args[0])
		}
		if err := casefile.Save(args[1], c); err != nil {
			return err
		}
		fmt.Printf("Exported %q version %d to %s\n", c.ID, c.Version, args[1])
		return nil
	},
}

var casePublishCmd = &cobra.Command{
	Use:   "publish <case-id>",
	Short: "Publish the latest draft of a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := st.CaseRepo().GetCase(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load case: %w", err)
		}
		if c == nil {
			return fmt.Errorf("case %q not found", args[0])
		}

		if err := scenario.Publish(c); err != nil {
			return err
		}
		if err := st.CaseRepo().SaveCase(cmd.Context(), c); err != nil {
			return fmt.Errorf("save case: %w", err)
		}
		fmt.Printf("Published %q as version %d\n", c.ID, c.Version)
		return nil
	},
}

// reportValidation prints warnings and returns the combined hard error,
// if any.
func reportValidation(c *scenario.Case) error {
	res := scenario.Validate(c)
	for _, w := range res.Warnings {
		fmt.Println("warning:", w)
	}
	if !res.OK() {
		return res.Err()
	}
	fmt.Printf("Case %q is valid: %d nodes, %d edges, %d objectives\n",
		c.ID, len(c.Nodes), len(c.Edges), len(c.Objectives))
	return nil
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func init() {
	caseCmd.AddCommand(caseListCmd)
	caseCmd.AddCommand(caseValidateCmd)
	caseCmd.AddCommand(caseImportCmd)
	caseCmd.AddCommand(caseExportCmd)
	caseCmd.AddCommand(casePublishCmd)
}
