package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"gridwire/model"
)

const (
	pngScale     = 8.0
	pngLineWidth = 2.0
	pngMargin    = 1.0
)

// ExportPNG rasterizes d's objects and connectors to a PNG file at
// path: object borders as hollow outlines, segments and junctions as
// filled strokes, both vector-rasterized at pngScale pixels per grid
// unit via golang.org/x/image/vector and composited onto an RGBA
// canvas with image/draw.
func ExportPNG(path string, d *model.Drawn) error {
	minX, minY, maxX, maxY := canvasBounds(d)
	ox, oy := pngMargin-minX, pngMargin-minY
	w := int((maxX-minX+2*pngMargin)*pngScale) + 1
	h := int((maxY-minY+2*pngMargin)*pngScale) + 1
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, o := range d.Objects {
		strokeRect(img, (o.StartX+ox)*pngScale, (o.StartY+oy)*pngScale, (o.EndX+ox)*pngScale, (o.EndY+oy)*pngScale, color.Black)
	}
	for _, c := range d.Connectors {
		col := color.RGBA{R: 0, G: 0, B: 200, A: 255}
		if c.VAttr != nil && c.VAttr.Color != "" {
			col = color.RGBA{R: 20, G: 20, B: 20, A: 255}
		}
		for _, s := range c.Segments {
			strokeLine(img, (s.StartX+ox)*pngScale, (s.StartY+oy)*pngScale, (s.EndX+ox)*pngScale, (s.EndY+oy)*pngScale, col)
		}
		for _, j := range c.Junction {
			fillDot(img, (j.X+ox)*pngScale, (j.Y+oy)*pngScale, col)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func canvasBounds(d *model.Drawn) (minX, minY, maxX, maxY float64) {
	seen := false
	consider := func(x, y float64) {
		if !seen {
			minX, maxX, minY, maxY = x, x, y, y
			seen = true
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, o := range d.Objects {
		consider(o.StartX, o.StartY)
		consider(o.EndX, o.EndY)
	}
	for _, c := range d.Connectors {
		for _, s := range c.Segments {
			consider(s.StartX, s.StartY)
			consider(s.EndX, s.EndY)
		}
	}
	if !seen {
		return 0, 0, 1, 1
	}
	return
}

// strokeLine fills a thin axis-aligned rectangle along (x1,y1)-(x2,y2)
// as a single vector contour.
func strokeLine(img *image.RGBA, x1, y1, x2, y2 float64, col color.Color) {
	half := float32(pngLineWidth / 2)
	fx1, fy1, fx2, fy2 := float32(x1), float32(y1), float32(x2), float32(y2)

	var x0, y0, x3, y3 float32
	if fx1 == fx2 {
		x0, x3 = fx1-half, fx1+half
		y0, y3 = minf32(fy1, fy2), maxf32(fy1, fy2)
	} else {
		y0, y3 = fy1-half, fy1+half
		x0, x3 = minf32(fx1, fx2), maxf32(fx1, fx2)
	}
	fillPath(img, col, [][2]float32{{x0, y0}, {x3, y0}, {x3, y3}, {x0, y3}})
}

func strokeRect(img *image.RGBA, x1, y1, x2, y2 float64, col color.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	strokeLine(img, x1, y1, x2, y1, col)
	strokeLine(img, x1, y2, x2, y2, col)
	strokeLine(img, x1, y1, x1, y2, col)
	strokeLine(img, x2, y1, x2, y2, col)
}

func fillDot(img *image.RGBA, x, y float64, col color.Color) {
	r := float32(pngLineWidth)
	fx, fy := float32(x), float32(y)
	fillPath(img, col, [][2]float32{
		{fx - r, fy - r}, {fx + r, fy - r}, {fx + r, fy + r}, {fx - r, fy + r},
	})
}

func fillPath(img *image.RGBA, col color.Color, points [][2]float32) {
	b := img.Bounds()
	rz := vector.NewRasterizer(b.Dx(), b.Dy())
	rz.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		rz.LineTo(p[0], p[1])
	}
	rz.ClosePath()

	mask := image.NewAlpha(b)
	rz.Draw(mask, mask.Bounds(), image.NewUniform(color.Opaque), image.Point{})
	draw.DrawMask(img, b, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
