package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	qrgen "github.com/j4ncp/qr-gen"
	"github.com/j4ncp/qr-gen/mode"
)

var (
	flagConfig  string
	flagMode    string
	flagECI     int
	flagOut     string
	flagVerbose bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <payload>",
	Short: "Encode a single payload into a QR Code / Micro QR Code symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&flagConfig, "config", "1-M", `symbol configuration "{size}-{ecc}", e.g. "7-Q" or "M3-L"`)
	encodeCmd.Flags().StringVar(&flagMode, "mode", "bytes", "encoding mode: numeric, alphanumeric, bytes, kanji")
	encodeCmd.Flags().IntVar(&flagECI, "eci", -1, "ECI assignment number to prefix (Standard symbols only; -1 disables)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output file (default: stdout)")
	encodeCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log build diagnostics to stderr")
}

func runEncode(cmd *cobra.Command, args []string) error {
	setupLogging(flagVerbose)

	payload, err := readPayload(args[0])
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	cfg, err := qrgen.ParseConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("parsing --config: %w", err)
	}
	m, ok := mode.Parse(flagMode)
	if !ok {
		return fmt.Errorf("unknown --mode %q", flagMode)
	}

	var eci *uint32
	if flagECI >= 0 {
		v := uint32(flagECI)
		eci = &v
	}

	slog.Debug("build requested", "size", cfg.Size, "ecc", cfg.Level, "mode", m, "eci", flagECI, "bytes", len(payload))

	result, err := qrgen.Build(payload, cfg.Size, cfg.Level, m, eci)
	if err != nil {
		return fmt.Errorf("building symbol: %w", err)
	}
	slog.Info("symbol built", "size", cfg.Size, "ecc", cfg.Level, "mask", result.MaskIndex)

	rendered := renderMatrix(result.Matrix)
	if flagOut == "" {
		fmt.Print(rendered)
		// An interactive terminal gets a trailing status line; a pipe or
		// redirect gets only the matrix, so the output stays composable
		// (grounded in login.go's term.IsTerminal check for the same reason).
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintf(os.Stderr, "%s symbol, mask %d, %dx%d modules\n",
				cfg, result.MaskIndex, len(result.Matrix), len(result.Matrix))
		}
		return nil
	}
	return os.WriteFile(flagOut, []byte(rendered), 0644)
}

// readPayload reads args[0] directly, or the contents of a file when
// prefixed with '@' (e.g. "@payload.txt"), matching the common CLI
// convention for "value or @file" arguments.
func readPayload(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		return os.ReadFile(arg[1:])
	}
	return []byte(arg), nil
}

// renderMatrix draws the symbol as a block-character text grid: two
// characters per module, one output line per module row, produces roughly
// square terminal cells.
func renderMatrix(m [][]bool) string {
	var b strings.Builder
	for _, row := range m {
		for _, dark := range row {
			if dark {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
