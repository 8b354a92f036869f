package cmd

import (
	"fmt"

	"gridwire/engine"

	"github.com/spf13/cobra"
)

var (
	removeConnID string
	removeOut    string
)

var removeConnCmd = &cobra.Command{
	Use:   "remove-conn <file>",
	Short: "Remove a connector and reassimilate its neighbours",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := loadOrNew(args[0])
		if err != nil {
			return err
		}
		mtx := freshMatrix(d)

		c := d.FindConnector(removeConnID)
		if c == nil {
			return fmt.Errorf("no such connector %q", removeConnID)
		}
		if err := engine.RemoveConn(d, mtx, c); err != nil {
			return err
		}
		return save(d, args[0], removeOut)
	},
}

func init() {
	rootCmd.AddCommand(removeConnCmd)
	removeConnCmd.Flags().StringVar(&removeConnID, "id", "", "connector ID (required)")
	removeConnCmd.Flags().StringVar(&removeOut, "out", "", "output path (default: overwrite <file>)")
	removeConnCmd.MarkFlagRequired("id")
}
