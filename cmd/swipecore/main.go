// Command swipecore is a batch CLI host for the recognition core: it plays
// the role of the host keyboard (touch capture, rendering, suggestion
// display), feeding recorded gestures through an Engine and printing ranked
// candidates.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "swipecore",
		Short:         "Swipe-gesture word recognition core",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRecognizeCmd())
	root.AddCommand(newUpdateLayoutCmd())
	root.AddCommand(newInspectDictCmd())
	return root
}
