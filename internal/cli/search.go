package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/service"
)

type searchOptions struct {
	pages  int
	asJSON bool
}

func newSearchCommand(search service.SearchService) *cobra.Command {
	opts := searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search cards and print the lite projection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.pages < 1 {
				return fmt.Errorf("--pages must be at least 1, got %d", opts.pages)
			}
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New("query must not be blank")
			}
			cards, err := collectPages(cmd, search, query, opts.pages)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), cards)
			}
			return writeCardTable(cmd.OutOrStdout(), cards)
		},
	}

	cmd.Flags().IntVar(&opts.pages, "pages", 1, "number of result pages to follow")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print cards as JSON")
	return cmd
}

// collectPages follows next-page tokens until pages are exhausted or the upstream has no more.
func collectPages(cmd *cobra.Command, search service.SearchService, query string, pages int) ([]model.LiteCard, error) {
	ctx := cmd.Context()

	result, err := search.SearchLite(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	cards := append([]model.LiteCard{}, result.Cards...)

	for page := 1; page < pages && result.HasMore && result.NextPage != ""; page++ {
		result, err = search.PageLite(ctx, result.NextPage)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page+1, err)
		}
		cards = append(cards, result.Cards...)
	}
	return cards, nil
}

func writeCardTable(w io.Writer, cards []model.LiteCard) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMANA\tTYPE\tID")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.ManaCost, c.TypeLine, c.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d cards\n", len(cards))
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
