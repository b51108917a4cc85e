package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kerim-dauren/hostname/internal/application"
)

func NewParseCommand() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "parse HOST",
		Short: "Split a host into subdomains, SLD, TLD and port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			result, err := rt.service.Parse(cmd.Context(), args[0], normalize)
			if err != nil {
				return fmt.Errorf("invalid host %q: %w", args[0], err)
			}

			if rt.format() != FormatText {
				return writeObject(rt.writer, rt.format(), result)
			}
			return writeTable(rt.writer, nil, parseRows(result))
		},
	}

	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "Accept URLs and Unicode names by normalizing first")

	return cmd
}

func parseRows(r *application.ParseResult) [][]string {
	rows := [][]string{
		{"host:", r.HostWithPort()},
		{"name:", r.Name},
		{"subdomains:", strings.Join(r.Subdomains, ", ")},
		{"sld:", r.SLD},
	}
	if r.TLD != "" {
		rows = append(rows, []string{"tld:", r.TLD})
	}
	if r.Port != nil {
		rows = append(rows, []string{"port:", fmt.Sprint(*r.Port)})
	}
	rows = append(rows,
		[]string{"wildcard:", formatBool(r.Wildcard)},
		[]string{"localhost:", formatBool(r.Localhost)},
	)
	return rows
}
