// new.go implements the "salesflow new" command creating a session.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var contactPerson string

var newCmd = &cobra.Command{
	Use:   "new <company>",
	Short: "Start tracking a new sales session",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	company := strings.Join(args, " ")
	sess := env.Store.Create(company, contactPerson)

	fmt.Printf("Created session %s for %s\n", sess.ID, sess.CompanyName)
	return nil
}

func init() {
	newCmd.Flags().StringVar(&contactPerson, "contact", "", "Contact person at the company")
}
