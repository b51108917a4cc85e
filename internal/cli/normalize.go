package cli

import (
	"github.com/spf13/cobra"
)

type normalizeResult struct {
	Input      string `json:"input" yaml:"input"`
	Normalized string `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func NewNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize HOST...",
		Short: "Convert URLs and Unicode names to the ASCII host form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			results := make([]normalizeResult, len(args))
			failed := false
			for i, raw := range args {
				results[i].Input = raw
				normalized, err := rt.normalizer.Normalize(raw)
				if err != nil {
					results[i].Error = err.Error()
					failed = true
					continue
				}
				results[i].Normalized = normalized
			}

			if rt.format() == FormatText {
				rows := make([][]string, len(results))
				for i, r := range results {
					out := r.Normalized
					if r.Error != "" {
						out = "error: " + r.Error
					}
					rows[i] = []string{r.Input, out}
				}
				err = writeTable(rt.writer, nil, rows)
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
}
