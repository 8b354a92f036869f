package cmd

import (
	"fmt"

	"gridwire/engine"
	"gridwire/model"
	"gridwire/router"

	"github.com/spf13/cobra"
)

var (
	connFrom    string
	connTo      string
	connVia     string
	connRouted  bool
	connRouter  string
	connOut     string
)

var connectCmd = &cobra.Command{
	Use:   "connect <file>",
	Short: "Draw a connector between two ports",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := loadOrNew(args[0])
		if err != nil {
			return err
		}
		mtx := freshMatrix(d)

		from := d.FindPort(connFrom)
		if from == nil {
			return fmt.Errorf("no such port %q", connFrom)
		}
		to := d.FindPort(connTo)
		if to == nil {
			return fmt.Errorf("no such port %q", connTo)
		}

		var segs []*model.Segment
		if connRouted {
			r := router.NewSimpleRouter()
			segs, _, _ = r.GenerateSegments(mtx, from.X, from.Y, to.X, to.Y, connRouter, router.JumpDefault)
		} else {
			pts, err := parsePoints(connVia)
			if err != nil {
				return fmt.Errorf("--via: %w", err)
			}
			path := append([][2]float64{{from.X, from.Y}}, pts...)
			path = append(path, [2]float64{to.X, to.Y})
			for i := 0; i < len(path)-1; i++ {
				segs = append(segs, &model.Segment{StartX: path[i][0], StartY: path[i][1], EndX: path[i+1][0], EndY: path[i+1][1]})
			}
		}

		c, err := engine.DrawConnector(d, mtx, segs)
		if err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		fmt.Printf("connector %s (%d segments)\n", c.ID, len(c.Segments))
		return save(d, args[0], connOut)
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
	connectCmd.Flags().StringVar(&connFrom, "from", "", "source port ID (required)")
	connectCmd.Flags().StringVar(&connTo, "to", "", "destination port ID (required)")
	connectCmd.Flags().StringVar(&connVia, "via", "", "\";\"-separated \"x,y\" waypoints between the ports")
	connectCmd.Flags().BoolVar(&connRouted, "route", false, "auto-route with the orthogonal bend router instead of --via")
	connectCmd.Flags().StringVar(&connRouter, "router-fn", "simple", "router function name passed through to the router")
	connectCmd.Flags().StringVar(&connOut, "out", "", "output path (default: overwrite <file>)")
	connectCmd.MarkFlagRequired("from")
	connectCmd.MarkFlagRequired("to")
}
