// search.go implements the "salesflow search" command over the script catalog.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salesflow-dev/salesflow/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the script for a phrase",
	Long: `Case-insensitive substring search across node titles, script text,
Q&A pairs, and checkpoints. Each node appears at most once, matched on
the highest-priority category.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results := search.Query(env.Catalog, query)
	if len(results) == 0 {
		fmt.Printf("No matches for %q\n", query)
		return nil
	}

	for _, r := range results {
		fmt.Printf("%s (%s, %s)\n", r.Node.Title, r.Node.Phase.Label(), r.MatchType)
		fmt.Printf("    %s\n", r.MatchText)
	}

	return nil
}
