package viz

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille-based Surface. Each terminal cell holds 2x4 pixels
// and a single foreground color; the last color painted into a cell wins.
// Pixels painted darker than the background are cleared instead of set.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.NRGBA
	bg            color.NRGBA
	pen           color.NRGBA
}

// NewCanvas creates a canvas of w x h terminal cells.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.alloc(w, h)
	return c
}

func (c *Canvas) alloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]color.NRGBA, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.NRGBA, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Bounds reports the size in sub-pixels: (Width*2) x (Height*4).
func (c *Canvas) Bounds() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Resize takes pixel dimensions and rounds them down to whole cells.
func (c *Canvas) Resize(w, h int) {
	cols, rows := w/2, h/4
	if cols == c.Width && rows == c.Height {
		return
	}
	c.alloc(cols, rows)
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = c.pen
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets every cell and remembers bg for blending.
func (c *Canvas) Clear(bg color.NRGBA) {
	c.bg = bg
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = bg
		}
	}
}

// plot paints one pixel in color col, blended over the background.
func (c *Canvas) plot(x, y int, col color.NRGBA) {
	out := blend(col, c.bg)
	if luma(out) < luma(c.bg) {
		c.Unset(x, y)
		return
	}
	c.pen = out
	c.Set(x, y)
}

func (c *Canvas) FillCircle(x, y, r float64, col color.NRGBA) {
	if r < 1 {
		c.plot(int(math.Round(x)), int(math.Round(y)), col)
		return
	}
	c.fill(x, y, r, func(float64, float64) color.NRGBA { return col })
}

func (c *Canvas) RadialCircle(x, y, r, fx, fy float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	focus := r + math.Hypot(x-fx, y-fy)
	c.fill(x, y, r, func(px, py float64) color.NRGBA {
		t := math.Hypot(px-fx, py-fy) / focus
		return lerp(inner, outer, t)
	})
}

func (c *Canvas) fill(x, y, r float64, shade func(px, py float64) color.NRGBA) {
	x0, x1 := int(math.Floor(x-r)), int(math.Ceil(x+r))
	y0, y1 := int(math.Floor(y-r)), int(math.Ceil(y+r))
	r2 := r * r
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx, dy := float64(px)-x, float64(py)-y
			if dx*dx+dy*dy <= r2 {
				c.plot(px, py, shade(float64(px), float64(py)))
			}
		}
	}
}

func (c *Canvas) StrokeCircle(x, y, r, dash float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	// half-pixel arc steps keep the outline gap free
	step := 0.5 / r
	for a := 0.0; a < 2*math.Pi; a += step {
		if dash > 0 && int(a*r/dash)%2 == 1 {
			continue
		}
		c.plot(int(math.Round(x+r*math.Cos(a))), int(math.Round(y+r*math.Sin(a))), col)
	}
}

func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.NRGBA) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	c.pen = blend(col, c.bg)
	dark := luma(c.pen) < luma(c.bg)

	half := int(width / 2)
	// thicken perpendicular to the dominant axis
	horizontal := absInt(ix1-ix0) >= absInt(iy1-iy0)
	for o := -half; o <= half; o++ {
		ox, oy := 0, o
		if !horizontal {
			ox, oy = o, 0
		}
		c.bresenham(ix0+ox, iy0+oy, ix1+ox, iy1+oy, dark)
	}
}

// DrawLine draws a one pixel line in the current pen color.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.bresenham(x0, y0, x1, y1, false)
}

// bresenham walks the line from (x0, y0) to (x1, y1).
func (c *Canvas) bresenham(x0, y0, x1, y1 int, erase bool) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		if erase {
			c.Unset(x0, y0)
		} else {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Lit reports whether the pixel at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors each cell with its last painted color.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if r == blank {
				b.WriteRune(r)
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorHex(c.Colors[i][j])))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func blend(fg, bg color.NRGBA) color.NRGBA {
	a := float64(fg.A) / 255
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*a + float64(b)*(1-a)))
	}
	return color.NRGBA{mix(fg.R, bg.R), mix(fg.G, bg.G), mix(fg.B, bg.B), 0xff}
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func luma(c color.NRGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func colorHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
