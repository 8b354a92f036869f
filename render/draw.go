package render

import (
	"gridwire/model"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultStyle is used for any segment, port or object border without
// a VisAttr color override.
var DefaultStyle = tcell.StyleDefault

// colorOf resolves a VisAttr's color string (a CSS-style hex color
// such as "#1e90ff"; color names are not recognised) to a tcell style,
// falling back to DefaultStyle on a parse failure or a nil attribute.
func colorOf(v *model.VisAttr) tcell.Style {
	if v == nil || v.Color == "" {
		return DefaultStyle
	}
	c, err := colorful.Hex(v.Color)
	if err != nil {
		return DefaultStyle
	}
	r, g, b := c.RGB255()
	return DefaultStyle.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// Draw paints every object, connector, junction and port of d onto
// screen. It does not call screen.Show; callers batch Draw with any
// overlay chrome before flushing a frame.
func Draw(screen tcell.Screen, d *model.Drawn, caps TerminalCapabilities) {
	screen.Clear()
	for _, entry := range d.Order {
		switch v := entry.Item.(type) {
		case *model.Object:
			drawObject(screen, v, caps)
		case *model.Connector:
			drawConnector(screen, v, caps)
		}
	}
	for _, o := range d.Objects {
		for _, p := range o.Port {
			drawPort(screen, p)
		}
	}
}

func boxRunes(caps TerminalCapabilities) (h, v, ul, ur, ll, lr rune) {
	if caps.UnicodeLevel == UnicodeNone {
		return '-', '|', '+', '+', '+', '+'
	}
	return tcell.RuneHLine, tcell.RuneVLine, tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner
}

func drawObject(screen tcell.Screen, o *model.Object, caps TerminalCapabilities) {
	x1, y1 := int(o.StartX), int(o.StartY)
	x2, y2 := int(o.EndX), int(o.EndY)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	h, v, ul, ur, ll, lr := boxRunes(caps)

	if o.Shape == model.ShapeLine {
		drawLine(screen, x1, y1, x2, y2, DefaultStyle, caps)
		return
	}

	for x := x1; x <= x2; x++ {
		screen.SetContent(x, y1, h, nil, DefaultStyle)
		screen.SetContent(x, y2, h, nil, DefaultStyle)
	}
	for y := y1; y <= y2; y++ {
		screen.SetContent(x1, y, v, nil, DefaultStyle)
		screen.SetContent(x2, y, v, nil, DefaultStyle)
	}
	screen.SetContent(x1, y1, ul, nil, DefaultStyle)
	screen.SetContent(x2, y1, ur, nil, DefaultStyle)
	screen.SetContent(x1, y2, ll, nil, DefaultStyle)
	screen.SetContent(x2, y2, lr, nil, DefaultStyle)
}

func drawConnector(screen tcell.Screen, c *model.Connector, caps TerminalCapabilities) {
	style := colorOf(c.VAttr)
	for _, s := range c.Segments {
		st := style
		if s.VAttr != nil {
			st = colorOf(s.VAttr)
		}
		drawLine(screen, int(s.StartX), int(s.StartY), int(s.EndX), int(s.EndY), st, caps)
	}
	junctionRune := tcell.RuneBullet
	if caps.UnicodeLevel == UnicodeNone {
		junctionRune = '*'
	}
	for _, j := range c.Junction {
		screen.SetContent(int(j.X), int(j.Y), junctionRune, nil, style)
	}
}

func drawLine(screen tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, caps TerminalCapabilities) {
	h, v, _, _, _, _ := boxRunes(caps)
	if x1 == x2 {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			screen.SetContent(x1, y, v, nil, style)
		}
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		screen.SetContent(x, y1, h, nil, style)
	}
}

func drawPort(screen tcell.Screen, p *model.Port) {
	screen.SetContent(int(p.X), int(p.Y), 'o', nil, DefaultStyle)
}
