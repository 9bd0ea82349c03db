// delete.go implements the "salesflow delete" command removing a session.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a stored session",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	if env.Store.GetByID(args[0]) == nil {
		return fmt.Errorf("session not found: %s", args[0])
	}

	env.Store.Delete(args[0])
	fmt.Printf("Deleted session %s\n", args[0])
	return nil
}
