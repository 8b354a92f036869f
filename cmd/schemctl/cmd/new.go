package cmd

import (
	"fmt"

	"gridwire/model"

	"github.com/spf13/cobra"
)

var (
	newGrid     float64
	newSnapGrid bool
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty canvas document",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d := model.NewDrawn(newGrid, newGrid, newSnapGrid)
		if err := d.Save(args[0]); err != nil {
			return fmt.Errorf("saving %s: %w", args[0], err)
		}
		fmt.Printf("created %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().Float64Var(&newGrid, "grid", 10, "grid spacing in both axes")
	newCmd.Flags().BoolVar(&newSnapGrid, "snap", true, "snap coordinates to the grid")
}
