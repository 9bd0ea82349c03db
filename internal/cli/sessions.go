// sessions.go implements the "salesflow sessions" command listing stored sessions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesflow-dev/salesflow/internal/tui"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List tracked sales sessions",
	Long: `Display every stored session with its completion rate and outcome,
most recent first.`,
	RunE: runSessions,
}

func runSessions(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	summaries := env.Store.Summaries()
	if len(summaries) == 0 {
		fmt.Println("No sessions yet; start one with: salesflow new <company>")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-12s  %5s  %s\n", "ID", "COMPANY", "STATUS", "RATE", "OUTCOME")
	for _, s := range summaries {
		outcome := "-"
		if s.Outcome != "" {
			outcome = s.Outcome.Label()
		}
		fmt.Printf("%-36s  %-20s  %-12s  %4d%%  %s\n",
			s.ID, tui.Truncate(s.CompanyName, 20), s.Status, s.CompletionRate, outcome)
	}

	return nil
}
