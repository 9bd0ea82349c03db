// show.go implements the "salesflow show" command printing one session.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesflow-dev/salesflow/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session's checkpoints, result, and suggestions",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	sess := env.Store.GetByID(args[0])
	if sess == nil {
		return fmt.Errorf("session not found: %s", args[0])
	}

	fmt.Print(report.Format(env.Catalog, report.Generate(env.Catalog, *sess)))
	return nil
}
