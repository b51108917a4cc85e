package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kerim-dauren/hostname/internal/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := cli.NewRootCommand(cli.DefaultConfig()).Execute(); err != nil {
		// Per-host failures were already reported in the command output.
		if !errors.Is(err, cli.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
