// export.go implements the "salesflow export" command dumping all sessions.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all sessions as a JSON document",
	Long: `Serialize the entire versioned session store. The output can be
re-imported on another machine with: salesflow import`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	data := env.Store.ExportJSON()
	if exportOut == "" {
		fmt.Println(data)
		return nil
	}

	if err := os.WriteFile(exportOut, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	fmt.Printf("Exported sessions to %s\n", exportOut)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")
}
