package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// writeObject encodes obj as JSON or YAML. Text output is command specific.
func writeObject(w io.Writer, format Format, obj any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(obj)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// writeTable writes tab separated rows aligned into columns.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(header) > 0 {
		writeRow(tw, header)
	}
	for _, row := range rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cols []string) {
	for i, col := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
}
