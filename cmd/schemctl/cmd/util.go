package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"gridwire/matrix"
	"gridwire/model"
)

func loadOrNew(path string) (*model.Drawn, error) {
	d, err := model.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return d, nil
}

func save(d *model.Drawn, path, out string) error {
	if out == "" {
		out = path
	}
	if err := d.Save(out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	return nil
}

func freshMatrix(d *model.Drawn) *matrix.RoutingMatrix {
	return matrix.FromDrawn(d)
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y float64, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseRect parses "x1,y1,x2,y2".
func parseRect(s string) (x1, y1, x2, y2 float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("expected \"x1,y1,x2,y2\", got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

// parsePoints parses a ";"-separated list of "x,y" pairs.
func parsePoints(s string) ([][2]float64, error) {
	if s == "" {
		return nil, nil
	}
	var out [][2]float64
	for _, part := range strings.Split(s, ";") {
		x, y, err := parsePoint(part)
		if err != nil {
			return nil, err
		}
		out = append(out, [2]float64{x, y})
	}
	return out, nil
}
