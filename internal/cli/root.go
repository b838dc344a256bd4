// Package cli implements the grimoirectl command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/grimoire-service/internal/service"
)

// NewRootCommand builds the grimoirectl root command around search.
func NewRootCommand(search service.SearchService) *cobra.Command {
	root := &cobra.Command{
		Use:   "grimoirectl",
		Short: "Query card search and parse decklists from the terminal.",
		Long: `grimoirectl runs card searches through the same cached fetcher the
grimoire service uses and parses plain-text decklists.`,
		SilenceUsage: true,
	}

	root.AddCommand(newSearchCommand(search))
	root.AddCommand(newDeckListCommand())
	return root
}
