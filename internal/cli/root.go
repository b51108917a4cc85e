package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerim-dauren/hostname/internal/application"
	"github.com/kerim-dauren/hostname/internal/infrastructure/normalizer"
	"github.com/kerim-dauren/hostname/internal/infrastructure/storage"
)

// ErrInvalidInput is returned when at least one argument failed to validate,
// parse or normalize. The per-host results have already been written.
var ErrInvalidInput = errors.New("one or more hosts are invalid")

type Config struct {
	OutputWriter io.Writer
}

func DefaultConfig() Config {
	return Config{OutputWriter: os.Stdout}
}

type runtimeState struct {
	outputFormat string
	writer       io.Writer
	normalizer   *normalizer.HostNormalizer
	catalog      *storage.Catalog
	service      *application.HostnameService
}

type runtimeKey struct{}

func NewRootCommand(cfg Config) *cobra.Command {
	catalog := storage.NewCatalog()
	hostNormalizer := normalizer.NewHostNormalizer()

	rt := &runtimeState{
		writer:     cfg.OutputWriter,
		normalizer: hostNormalizer,
		catalog:    catalog,
		service:    application.NewHostnameService(hostNormalizer, catalog),
	}

	root := &cobra.Command{
		Use:           "hostctl",
		Short:         "Validate, parse and match host names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.writer == nil {
				rt.writer = cmd.OutOrStdout()
			}
			if rt.outputFormat == "" {
				rt.outputFormat = os.Getenv("HOSTCTL_OUTPUT")
			}
			if rt.outputFormat == "" {
				rt.outputFormat = string(FormatText)
			}
			switch Format(rt.outputFormat) {
			case FormatText, FormatJSON, FormatYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", rt.outputFormat)
			}
		},
	}

	root.PersistentFlags().StringVarP(&rt.outputFormat, "output", "o", "", "Output format: text, json, yaml")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewValidateCommand(),
		NewParseCommand(),
		NewNormalizeCommand(),
		NewMatchCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}

func (rt *runtimeState) format() Format {
	return Format(rt.outputFormat)
}
