// report.go implements the "salesflow report" command writing a session report.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/salesflow-dev/salesflow/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Write a markdown report for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	sess := env.Store.GetByID(args[0])
	if sess == nil {
		return fmt.Errorf("session not found: %s", args[0])
	}

	r := report.Generate(env.Catalog, *sess)
	path, err := report.Write(filepath.Join(env.Dir, "reports"), env.Catalog, r)
	if err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", path)
	return nil
}
