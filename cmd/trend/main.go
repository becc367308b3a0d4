// Command trend fits a least squares line through a series and forecasts it forward.
package main

import (
	"log/slog"
	"os"

	"github.com/aouyang1/go-trend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Error("trend failed", "error", err)
		os.Exit(cli.GetExitCode(err))
	}
}
