package cmd

import (
	"fmt"

	"gridwire/engine"
	"gridwire/model"
	"gridwire/router"

	"github.com/spf13/cobra"
)

var (
	moveConnID  string
	moveObjID   int
	moveDX      float64
	moveDY      float64
	moveOut     string
	moveRouter  string
)

var moveConnCmd = &cobra.Command{
	Use:   "move-conn <file>",
	Short: "Translate a connector and reconcile it against the canvas",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := loadOrNew(args[0])
		if err != nil {
			return err
		}
		mtx := freshMatrix(d)

		c := d.FindConnector(moveConnID)
		if c == nil {
			return fmt.Errorf("no such connector %q", moveConnID)
		}
		engine.MoveConn(d, mtx, []*model.Connector{c}, moveDX, moveDY)
		return save(d, args[0], moveOut)
	},
}

var moveObjCmd = &cobra.Command{
	Use:   "move-obj <file>",
	Short: "Translate an object, rerouting its attached connectors",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := loadOrNew(args[0])
		if err != nil {
			return err
		}
		mtx := freshMatrix(d)

		obj := d.FindObject(moveObjID)
		if obj == nil {
			return fmt.Errorf("no such object %d", moveObjID)
		}
		r := router.NewSimpleRouter()
		engine.MoveObj(d, mtx, r, obj, moveDX, moveDY, moveRouter, router.JumpDefault)
		return save(d, args[0], moveOut)
	},
}

func init() {
	rootCmd.AddCommand(moveConnCmd)
	rootCmd.AddCommand(moveObjCmd)

	for _, c := range []*cobra.Command{moveConnCmd, moveObjCmd} {
		c.Flags().Float64Var(&moveDX, "dx", 0, "horizontal offset")
		c.Flags().Float64Var(&moveDY, "dy", 0, "vertical offset")
		c.Flags().StringVar(&moveOut, "out", "", "output path (default: overwrite <file>)")
	}
	moveConnCmd.Flags().StringVar(&moveConnID, "id", "", "connector ID (required)")
	moveConnCmd.MarkFlagRequired("id")

	moveObjCmd.Flags().IntVar(&moveObjID, "id", 0, "object ID (required)")
	moveObjCmd.Flags().StringVar(&moveRouter, "router-fn", "simple", "router function name passed through to the router")
	moveObjCmd.MarkFlagRequired("id")
}
