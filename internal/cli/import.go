// import.go implements the "salesflow import" command merging exported sessions.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sessions from an exported JSON document",
	Long: `Merge sessions from a previous export. Sessions whose id already
exists locally are skipped; new ones are added ahead of the existing
list.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	res := env.Store.ImportJSON(string(data))
	if !res.OK {
		return fmt.Errorf("import failed: %s", res.Err)
	}

	fmt.Printf("Imported %d new session(s)\n", res.Count)
	return nil
}
