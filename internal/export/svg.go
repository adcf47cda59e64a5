// Package export renders the scene without a live display: an SVG surface
// for vector snapshots and a raster surface plus GIF recorder for animations.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
)

// SVG is a vector Surface. Each Clear starts a new document body, so after a
// frame it holds exactly that frame.
type SVG struct {
	width, height int
	background    color.NRGBA
	defs          strings.Builder
	body          strings.Builder
	gradients     int
}

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Bounds() (int, int) { return s.width, s.height }

func (s *SVG) Resize(w, h int) {
	s.width, s.height = w, h
	s.reset()
}

func (s *SVG) Clear(c color.NRGBA) {
	s.background = c
	s.reset()
}

func (s *SVG) reset() {
	s.defs.Reset()
	s.body.Reset()
	s.gradients = 0
}

func (s *SVG) FillCircle(x, y, r float64, c color.NRGBA) {
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>`+"\n",
		x, y, r, hex(c), opacity("fill-opacity", c))
}

func (s *SVG) RadialCircle(x, y, r, fx, fy float64, inner, outer color.NRGBA) {
	id := fmt.Sprintf("g%d", s.gradients)
	s.gradients++
	fmt.Fprintf(&s.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%.2f" cy="%.2f" r="%.2f" fx="%.2f" fy="%.2f">`+
		`<stop offset="0" stop-color="%s"%s/><stop offset="1" stop-color="%s"%s/></radialGradient>`+"\n",
		id, x, y, r, fx, fy,
		hex(inner), opacity("stop-opacity", inner), hex(outer), opacity("stop-opacity", outer))
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="url(#%s)"/>`+"\n", x, y, r, id)
}

func (s *SVG) StrokeCircle(x, y, r, dash float64, c color.NRGBA) {
	dashes := ""
	if dash > 0 {
		dashes = fmt.Sprintf(` stroke-dasharray="%.2f %.2f"`, dash, dash)
	}
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s"%s stroke-width="1"%s/>`+"\n",
		x, y, r, hex(c), opacity("stroke-opacity", c), dashes)
}

func (s *SVG) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	fmt.Fprintf(&s.body, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"%s stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		x0, y0, x1, y1, hex(c), opacity("stroke-opacity", c), width)
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.width, s.height, s.width, s.height)
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(s.defs.String())
		sb.WriteString("</defs>\n")
	}
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(s.background))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// ProfileToSVG plots a sampled curve, such as speed against radius, as a
// single polyline scaled to fill the image with a 10% margin.
func ProfileToSVG(xs, ys []float64, width, height int, strokeColor string) string {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 0; i < n; i++ {
		minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
		minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0f172a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i := 0; i < n; i++ {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(attr string, c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, attr, float64(c.A)/255)
}
