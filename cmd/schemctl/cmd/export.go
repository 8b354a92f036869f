package cmd

import (
	"fmt"

	"gridwire/render"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a canvas document to PNG or pretty-printed JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := loadOrNew(args[0])
		if err != nil {
			return err
		}
		if exportOut == "" {
			return fmt.Errorf("--out is required")
		}
		switch exportFormat {
		case "png":
			if err := render.ExportPNG(exportOut, d); err != nil {
				return fmt.Errorf("export png: %w", err)
			}
		case "json":
			if err := d.Save(exportOut); err != nil {
				return fmt.Errorf("export json: %w", err)
			}
		default:
			return fmt.Errorf("unknown format %q (want png or json)", exportFormat)
		}
		fmt.Printf("exported %s to %s\n", args[0], exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "png", "png or json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (required)")
	exportCmd.MarkFlagRequired("out")
}
