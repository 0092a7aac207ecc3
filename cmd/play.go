package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/casetalk/casetalk/internal/attempt"
	"github.com/casetalk/casetalk/internal/casefile"
	"github.com/casetalk/casetalk/internal/engine"
	"github.com/casetalk/casetalk/internal/factcheck"
	"github.com/casetalk/casetalk/internal/llm"
	"github.com/casetalk/casetalk/internal/scenario"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <case-id>",
	Short: "Run an interview session for a published case",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		student, _ := cmd.Flags().GetString("student")
		file, _ := cmd.Flags().GetString("file")
		pace, _ := cmd.Flags().GetDuration("pace")

		if file == "" && len(args) == 0 {
			return fmt.Errorf("provide a case ID or --file")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var c *scenario.Case
		if file != "" {
			c, err = casefile.Load(file)
			if err != nil {
				return err
			}
		} else {
			c, err = st.CaseRepo().GetPublished(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load case: %w", err)
			}
			if c == nil {
				return fmt.Errorf("no published version of case %q; publish it first or use --file", args[0])
			}
		}
		if err := scenario.Validate(c).Err(); err != nil {
			return err
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		tracker := attempt.NewTracker(attempt.NewStoreRepo(st.AttemptRepo()))
		a, err := tracker.Begin(ctx, student, c.ID)
		if err != nil {
			return err
		}
		sink := attempt.NewSessionSink(a, c, tracker)

		var delay engine.DelaySignal
		if pace > 0 {
			delay = engine.FixedDelay{D: pace}
		}

		rt, err := engine.NewRuntime(c, engine.Config{
			Provider: provider,
			Resolver: engine.NewLLMBranchResolver(provider),
			Checker:  factcheck.NewLLMChecker(provider),
			Delay:    delay,
			Sink:     sink,
			Logger:   resolveLogger(cmd),
		})
		if err != nil {
			return err
		}
		sink.WithEvents(st.EventRepo(), rt.Session().ID)

		fmt.Printf("%s (attempt %d)\n", c.Title, a.AttemptNumber)
		if c.Persona != "" {
			fmt.Printf("Interviewer: %s\n", c.Persona)
		}
		fmt.Println("Type your answers; /quit abandons the session.")
		fmt.Println(strings.Repeat("─", 60))

		printed := 0
		flush := func() {
			msgs := rt.Session().Messages
			for ; printed < len(msgs); printed++ {
				m := msgs[printed]
				if m.Role == engine.RoleAssistant {
					fmt.Printf("\n%s\n", m.Content)
				}
			}
		}

		if err := rt.Start(ctx); err != nil {
			return err
		}
		flush()

		scanner := bufio.NewScanner(os.Stdin)
		for rt.Session().Status == engine.StatusWaitingForInput {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				if err := rt.Abandon(ctx); err != nil {
					return err
				}
				break
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			if text == "/quit" {
				if err := rt.Abandon(ctx); err != nil {
					return err
				}
				break
			}
			if err := rt.HandleUserMessage(ctx, text); err != nil {
				return err
			}
			flush()
		}

		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		printResult(c, a)
		return nil
	},
}

func printResult(c *scenario.Case, a *attempt.Attempt) {
	if a.Abandoned || a.Score == nil {
		fmt.Println("Session abandoned; no score recorded.")
		fmt.Printf("Messages: %d, time: %s\n", a.TotalMessages, (time.Duration(a.TotalTimeSeconds) * time.Second).String())
		return
	}

	verdict := "FAIL"
	if a.IsPassing {
		verdict = "PASS"
	}
	fmt.Printf("Score: %d/100 (%s, passing is %d)\n", *a.Score, verdict, attempt.PassingScore)

	if len(a.ScoreBreakdown) > 0 {
		fmt.Println("\nObjectives:")
		for _, o := range c.Objectives {
			sub, ok := a.ScoreBreakdown[o.ID]
			if !ok {
				continue
			}
			fmt.Printf("  %-30s  %3d  (weight %d)\n", o.Title, sub, o.Weight)
		}
	}
}

func init() {
	playCmd.Flags().StringP("student", "s", "student", "Student identifier for attempt tracking")
	playCmd.Flags().StringP("file", "f", "", "Play a case JSON file directly instead of a stored case")
	playCmd.Flags().Duration("pace", 0, "Pause between consecutive avatar messages (e.g. 800ms)")
}
