// Command qrgen renders QR Code / Micro QR Code symbols from the command
// line. It is ambient scaffolding around the qrgen library (spec.md places
// "a command-line surface" out of the core's scope) — modeled on
// dfbb-im2code's cmd/im2code: a small Cobra root with verb subcommands,
// YAML for batch job files, and log/slog diagnostics to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qrgen",
	Short: "Render QR Code / Micro QR Code symbols",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	Execute()
}
