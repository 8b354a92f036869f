package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "schemctl",
	Short: "Orthogonal connector geometry engine",
	Long: `schemctl edits a 2-D schematic canvas: rectangles, lines and
ellipses joined by orthogonal wires that stay connected, merged and
split correctly as the canvas changes.

Apart from new (which creates an empty document) and export (which
writes only to --out), every subcommand loads the canvas document
given as its first argument, applies one operation, and writes the
result back to the same path (or to --out, if given).

Examples:
  schemctl new canvas.json --grid 10
  schemctl add-object canvas.json --shape rect --rect 0,0,20,10 --ports '0,5;20,5'
  schemctl connect canvas.json --from P1 --to P2
  schemctl move-obj canvas.json --id 1 --dx 5 --dy 0
  schemctl export canvas.json --format png --out canvas.png`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
