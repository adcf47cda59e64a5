package viz

import (
	"image/color"
	"math"

	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

const (
	// FitRadius is the scene radius, in field units, kept visible on small surfaces.
	FitRadius = 260.0

	tracerDotRadius   = 1.5
	discRadius        = 24.0
	discHighlightOff  = -5.0
	indicatorLength   = 18.0
	indicatorWidth    = 4.0
	crosshairHalf     = 10.0
	boundaryDash      = 10.0
	tracerFadeRadius  = 500.0
	tracerBaseAlpha   = 0.1
	tracerAlphaWeight = 0.4
)

// Palette holds the colors used for one frame.
type Palette struct {
	Background color.NRGBA
	Tracer     color.NRGBA
	Boundary   color.NRGBA
	Disc       color.NRGBA
	Highlight  color.NRGBA
	Indicator  color.NRGBA
	Crosshair  color.NRGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{0x0f, 0x17, 0x2a, 0xff},
		Tracer:     color.NRGBA{56, 189, 248, 0xff},
		Boundary:   color.NRGBA{255, 255, 255, alpha(0.05)},
		Disc:       color.NRGBA{0xf9, 0x73, 0x16, 0xff},
		Highlight:  color.NRGBA{0xfb, 0x92, 0x3c, 0xff},
		Indicator:  color.NRGBA{0, 0, 0, 0xff},
		Crosshair:  color.NRGBA{255, 255, 255, alpha(0.2)},
	}
}

// TracerAlpha grows toward the center so the core reads brighter.
func TracerAlpha(radius float64) float64 {
	return tracerBaseAlpha + (1-radius/tracerFadeRadius)*tracerAlphaWeight
}

// Painter draws a scene onto a surface.
type Painter struct {
	Palette   Palette
	FitRadius float64
}

func NewPainter() Painter {
	return Painter{Palette: DefaultPalette(), FitRadius: FitRadius}
}

// Scale maps field units to pixels: 1:1 on large surfaces, shrunk to keep
// FitRadius visible on small ones.
func (p Painter) Scale(w, h int) float64 {
	side := math.Min(float64(w), float64(h))
	if p.FitRadius <= 0 || side <= 0 {
		return 1
	}
	return math.Min(1, side/(2*p.FitRadius))
}

// Paint repaints the whole surface: background, tracers, core boundary,
// disc with its spin indicator, and the center crosshair.
func (p Painter) Paint(s Surface, scene *sim.Scene, prof vortex.Profile) {
	w, h := s.Bounds()
	k := p.Scale(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	pal := p.Palette

	s.Clear(pal.Background)

	for _, t := range scene.Particles.Tracers() {
		x, y := cx+math.Cos(t.Angle)*t.Radius*k, cy+math.Sin(t.Angle)*t.Radius*k
		c := pal.Tracer
		c.A = alpha(TracerAlpha(t.Radius))
		s.FillCircle(x, y, tracerDotRadius*k, c)
	}

	s.StrokeCircle(cx, cy, scene.Field.CoreRadius*k, boundaryDash*k, pal.Boundary)

	dx, dy := DiscCenter(cx, cy, prof.Radius*k, scene.Clock.OrbitalAngle)
	r := discRadius * k
	s.RadialCircle(dx, dy, r, dx+discHighlightOff*k, dy+discHighlightOff*k, pal.Highlight, pal.Disc)

	ix, iy := IndicatorTip(dx, dy, indicatorLength*k, scene.Clock.SpinAngle)
	s.Line(dx, dy, ix, iy, math.Max(1, indicatorWidth*k), pal.Indicator)

	hl := crosshairHalf * k
	s.Line(cx-hl, cy, cx+hl, cy, 1, pal.Crosshair)
	s.Line(cx, cy-hl, cx, cy+hl, 1, pal.Crosshair)
}

// DiscCenter places the disc on its orbit.
func DiscCenter(cx, cy, radius, orbital float64) (float64, float64) {
	return cx + math.Cos(orbital)*radius, cy + math.Sin(orbital)*radius
}

// IndicatorTip is the end of the spin indicator: straight up at zero spin,
// rotated clockwise on screen as spin grows.
func IndicatorTip(x, y, length, spin float64) (float64, float64) {
	return x + length*math.Sin(spin), y - length*math.Cos(spin)
}

func alpha(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 0xff
	}
	return uint8(math.Round(a * 255))
}
