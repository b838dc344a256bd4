package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/service"
)

func newDeckListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decklist",
		Short: "Work with plain-text decklists",
	}
	cmd.AddCommand(newDeckListParseCommand())
	return cmd
}

func newDeckListParseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: `Parse a decklist file ("-" reads stdin)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			parsed := service.ParseDeckList(string(raw))
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), parsed)
			}
			return writeDeckList(cmd.OutOrStdout(), cmd.ErrOrStderr(), parsed)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed deck as JSON")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read decklist: %w", err)
	}
	return data, nil
}

func writeDeckList(out, errOut io.Writer, parsed model.ParsedDeckList) error {
	for _, c := range parsed.Cards {
		if _, err := fmt.Fprintf(out, "%d %s\n", c.Count, c.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "Total: %d\n", parsed.TotalCards); err != nil {
		return err
	}
	for _, msg := range parsed.Errors {
		fmt.Fprintln(errOut, msg)
	}
	return nil
}
