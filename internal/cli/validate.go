package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

type validateResult struct {
	Host  string `json:"host" yaml:"host"`
	Valid bool   `json:"valid" yaml:"valid"`
}

func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate HOST...",
		Short: "Check hosts against the hostname rules",
		Long: `Check each HOST in its exact text form. Scheme prefixes, paths and
Unicode names are not accepted; use "normalize" first for those.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}

			results := make([]validateResult, len(args))
			allValid := true
			for i, host := range args {
				valid := rt.service.Validate(cmd.Context(), host)
				results[i] = validateResult{Host: host, Valid: valid}
				allValid = allValid && valid
			}

			if rt.format() == FormatText {
				rows := make([][]string, len(results))
				for i, r := range results {
					rows[i] = []string{r.Host, validity(r.Valid)}
				}
				err = writeTable(rt.writer, nil, rows)
			} else {
				err = writeObject(rt.writer, rt.format(), results)
			}
			if err != nil {
				return err
			}

			if !allValid {
				return ErrInvalidInput
			}
			return nil
		},
	}
}

func validity(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
