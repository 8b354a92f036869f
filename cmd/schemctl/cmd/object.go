package cmd

import (
	"fmt"

	"gridwire/engine"
	"gridwire/model"

	"github.com/spf13/cobra"
)

var (
	objShape string
	objRect  string
	objPorts string
	objOut   string
)

var addObjectCmd = &cobra.Command{
	Use:   "add-object <file>",
	Short: "Add a rectangle, line or ellipse with its ports",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := loadOrNew(args[0])
		if err != nil {
			return err
		}

		x1, y1, x2, y2, err := parseRect(objRect)
		if err != nil {
			return fmt.Errorf("--rect: %w", err)
		}
		shape, err := parseShape(objShape)
		if err != nil {
			return err
		}

		obj := &model.Object{ID: d.NextObjectID(), Shape: shape, StartX: x1, StartY: y1, EndX: x2, EndY: y2}
		d.AddObject(obj)

		pts, err := parsePoints(objPorts)
		if err != nil {
			return fmt.Errorf("--ports: %w", err)
		}
		mtx := freshMatrix(d)
		var newPorts []*model.Port
		for _, pt := range pts {
			p := &model.Port{ID: d.NextPortID(), X: pt[0], Y: pt[1], Obj: obj}
			obj.Port = append(obj.Port, p)
			d.AddPort(p)
			newPorts = append(newPorts, p)
			fmt.Printf("port %s at (%g,%g)\n", p.ID, p.X, p.Y)
		}
		// A new port may land on an existing connector's segment (forcing
		// a split) or coincide with another object's port (forming a
		// zero-segment connector); reconcile both before saving.
		engine.ConnectOverlapPortsForConn(d, mtx, nil, newPorts)
		engine.ConnectOverlapPorts(d, d.Ports)

		fmt.Printf("object %d (%s)\n", obj.ID, obj.Shape)
		return save(d, args[0], objOut)
	},
}

func parseShape(s string) (model.Shape, error) {
	switch s {
	case "rect", "":
		return model.ShapeRect, nil
	case "line":
		return model.ShapeLine, nil
	case "ellipse":
		return model.ShapeEllipse, nil
	default:
		return "", fmt.Errorf("unknown shape %q (want rect, line or ellipse)", s)
	}
}

func init() {
	rootCmd.AddCommand(addObjectCmd)
	addObjectCmd.Flags().StringVar(&objShape, "shape", "rect", "rect, line or ellipse")
	addObjectCmd.Flags().StringVar(&objRect, "rect", "", "x1,y1,x2,y2 bounding box (required)")
	addObjectCmd.Flags().StringVar(&objPorts, "ports", "", "\";\"-separated \"x,y\" port coordinates")
	addObjectCmd.Flags().StringVar(&objOut, "out", "", "output path (default: overwrite <file>)")
	addObjectCmd.MarkFlagRequired("rect")
}
