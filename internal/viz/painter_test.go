package viz

import (
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

type op struct {
	kind    string
	x, y, r float64
	x1, y1  float64
	c       color.NRGBA
}

// recorder is a Surface that logs draw calls.
type recorder struct {
	w, h      int
	available bool
	ops       []op
}

func newRecorder(w, h int) *recorder { return &recorder{w: w, h: h, available: true} }

func (r *recorder) Bounds() (int, int)  { return r.w, r.h }
func (r *recorder) Available() bool     { return r.available }
func (r *recorder) Resize(w, h int)     { r.w, r.h = w, h }
func (r *recorder) Clear(c color.NRGBA) { r.ops = append(r.ops, op{kind: "clear", c: c}) }
func (r *recorder) FillCircle(x, y, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "dot", x: x, y: y, r: rad, c: c})
}
func (r *recorder) RadialCircle(x, y, rad, fx, fy float64, inner, outer color.NRGBA) {
	r.ops = append(r.ops, op{kind: "disc", x: x, y: y, r: rad, x1: fx, y1: fy, c: outer})
}
func (r *recorder) StrokeCircle(x, y, rad, dash float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "ring", x: x, y: y, r: rad, x1: dash, c: c})
}
func (r *recorder) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "line", x: x0, y: y0, x1: x1, y1: y1, r: width, c: c})
}

func (r *recorder) kinds() []string {
	out := make([]string, 0, len(r.ops))
	for _, o := range r.ops {
		if len(out) > 0 && out[len(out)-1] == o.kind {
			continue
		}
		out = append(out, o.kind)
	}
	return out
}

func TestPaintOrder(t *testing.T) {
	scene := sim.NewScene(sim.WithSeed(1), sim.WithTracerCount(25))
	rec := newRecorder(800, 600)

	NewPainter().Paint(rec, scene, vortex.MustLookup(vortex.Center))

	want := []string{"clear", "dot", "ring", "disc", "line"}
	got := rec.kinds()
	if len(got) != len(want) {
		t.Fatalf("paint order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paint order = %v, want %v", got, want)
		}
	}

	dots := 0
	for _, o := range rec.ops {
		if o.kind == "dot" {
			dots++
		}
	}
	if dots != 25 {
		t.Errorf("expected 25 tracer dots, got %d", dots)
	}
}

func TestPaintGeometryAtFullScale(t *testing.T) {
	scene := sim.NewScene(sim.WithSeed(1), sim.WithTracerCount(0))
	scene.Clock = sim.Clock{OrbitalAngle: math.Pi / 2, SpinAngle: math.Pi / 2}
	rec := newRecorder(1000, 800)

	NewPainter().Paint(rec, scene, vortex.MustLookup(vortex.OuterFlow))

	var ring, disc, indicator op
	for _, o := range rec.ops {
		switch o.kind {
		case "ring":
			ring = o
		case "disc":
			disc = o
		case "line":
			if indicator.kind == "" {
				indicator = o
			}
		}
	}

	if ring.r != 150 || ring.x1 != boundaryDash {
		t.Errorf("boundary ring r=%v dash=%v", ring.r, ring.x1)
	}
	if math.Abs(disc.x-500) > 1e-9 || math.Abs(disc.y-620) > 1e-9 {
		t.Errorf("disc at (%v, %v), want (500, 620)", disc.x, disc.y)
	}
	if disc.r != discRadius {
		t.Errorf("disc radius %v, want %v", disc.r, discRadius)
	}
	// spin of π/2 turns the indicator from up to right
	if math.Abs(indicator.x1-(disc.x+indicatorLength)) > 1e-9 || math.Abs(indicator.y1-disc.y) > 1e-9 {
		t.Errorf("indicator tip (%v, %v)", indicator.x1, indicator.y1)
	}
}

func TestPainterScale(t *testing.T) {
	p := NewPainter()
	if s := p.Scale(1280, 720); s != 1 {
		t.Errorf("large surface scale = %v, want 1", s)
	}
	if s := p.Scale(160, 104); math.Abs(s-104/(2*FitRadius)) > 1e-12 {
		t.Errorf("small surface scale = %v", s)
	}
}

func TestTracerAlpha(t *testing.T) {
	if a := TracerAlpha(0); math.Abs(a-0.5) > 1e-12 {
		t.Errorf("alpha at center = %v, want 0.5", a)
	}
	if TracerAlpha(100) <= TracerAlpha(300) {
		t.Error("alpha should fall off with radius")
	}
}

func TestIndicatorTipAtZeroSpin(t *testing.T) {
	x, y := IndicatorTip(10, 10, 18, 0)
	if math.Abs(x-10) > 1e-12 || math.Abs(y+8) > 1e-12 {
		t.Errorf("tip = (%v, %v), want (10, -8)", x, y)
	}
}
