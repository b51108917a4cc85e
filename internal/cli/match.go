package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/kerim-dauren/hostname/internal/infrastructure/hostlist"
)

type matchResult struct {
	Host    string `json:"host" yaml:"host"`
	Matched bool   `json:"matched" yaml:"matched"`
	Entry   string `json:"entry,omitempty" yaml:"entry,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func NewMatchCommand() *cobra.Command {
	var listPath string

	cmd := &cobra.Command{
		Use:   "match --list FILE HOST...",
		Short: "Check hosts against a host list file",
		Long: `Load FILE as a host list (one host per line, ';'-separated extra fields,
'#' comments, plain or zipped) and report which list entry covers each HOST.
Wildcard entries such as *.example.com cover every host below example.com.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			if err := loadList(cmd, rt, listPath); err != nil {
				return err
			}

			results := make([]matchResult, len(args))
			failed := false
			for i, raw := range args {
				results[i].Host = raw
				match, err := rt.service.Match(cmd.Context(), raw)
				if err != nil {
					results[i].Error = err.Error()
					failed = true
					continue
				}
				results[i].Matched = match.Matched
				if match.Entry != nil {
					results[i].Entry = match.Entry.String()
				}
			}

			if rt.format() == FormatText {
				err = writeTable(rt.writer, []string{"HOST", "MATCHED", "ENTRY"}, matchRows(results))
			} else {
				err = writeObject(rt.writer, rt.format(), results)
			}
			if err != nil {
				return err
			}

			if failed {
				return ErrInvalidInput
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listPath, "list", "l", "", "Host list file")
	_ = cmd.MarkFlagRequired("list")

	return cmd
}

func loadList(cmd *cobra.Command, rt *runtimeState, path string) error {
	source := hostlist.NewFileSource(hostlist.SourceConfig{
		Type:     hostlist.SourceTypeFile,
		Location: path,
		Timeout:  30 * time.Second,
	})

	data, err := source.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read host list: %w", err)
	}

	list, err := hostlist.NewNormalizingParser(rt.normalizer).Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse host list: %w", err)
	}
	list.Source = source.Name()

	for _, r := range list.Rejected {
		slog.Warn("Skipping host list line", "line", r.Line, "text", r.Text, "error", r.Cause)
	}

	return rt.catalog.Update(list)
}

func matchRows(results []matchResult) [][]string {
	rows := make([][]string, len(results))
	for i, r := range results {
		entry := r.Entry
		if r.Error != "" {
			entry = "error: " + r.Error
		} else if entry == "" {
			entry = "-"
		}
		rows[i] = []string{r.Host, formatBool(r.Matched), entry}
	}
	return rows
}
