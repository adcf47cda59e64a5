package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/gif"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/viz"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

func renderFrames(t *testing.T, s viz.Surface, pos vortex.Position, n int, each func()) *sim.Scene {
	t.Helper()
	scene := sim.NewScene(sim.WithSeed(11))
	loop := viz.NewLoop(scene, viz.NewPainter(), zerolog.Nop())
	tok, err := loop.Attach(s, viz.Input{Position: pos, Playing: true})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if res := loop.Frame(tok); res != viz.Rendered {
			t.Fatalf("frame %d: %s", i, res)
		}
		if each != nil {
			each()
		}
	}
	loop.Detach()
	return scene
}

func TestSVGFrame(t *testing.T) {
	s := NewSVG(800, 600)
	renderFrames(t, s, vortex.InnerEdge, 3, nil)
	doc := s.String()

	// one document per frame: tracers, the core ring and the disc
	if got := strings.Count(doc, "<circle"); got != sim.TracerCount+2 {
		t.Errorf("expected %d circles, got %d", sim.TracerCount+2, got)
	}
	if strings.Count(doc, "<radialGradient") != 1 {
		t.Error("expected a single disc gradient")
	}
	for _, want := range []string{`fill="#0f172a"`, `stroke-dasharray="10.00 10.00"`, `stroke="#000000"`, "</svg>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("svg missing %s", want)
		}
	}
	if got := strings.Count(doc, "<line"); got != 3 {
		t.Errorf("expected indicator and two crosshair lines, got %d", got)
	}
}

func TestSVGClearResets(t *testing.T) {
	s := NewSVG(100, 100)
	s.FillCircle(10, 10, 2, color.NRGBA{255, 0, 0, 128})
	if !strings.Contains(s.String(), `fill-opacity="0.502"`) {
		t.Error("translucent fill should carry an opacity")
	}
	s.Clear(color.NRGBA{0, 0, 0, 255})
	if strings.Contains(s.String(), "<circle") {
		t.Error("clear should drop earlier shapes")
	}
}

func TestRasterDrawing(t *testing.T) {
	r := NewRaster(64, 64)
	bg := color.NRGBA{0x0f, 0x17, 0x2a, 0xff}
	r.Clear(bg)

	if got := r.Image().RGBAAt(0, 0); got.R != bg.R || got.B != bg.B {
		t.Errorf("background = %v", got)
	}

	r.FillCircle(32, 32, 8, color.NRGBA{0xf9, 0x73, 0x16, 0xff})
	if got := r.Image().RGBAAt(32, 32); got.R != 0xf9 {
		t.Errorf("disc pixel = %v", got)
	}

	r.Line(32, 32, 32, 20, 4, color.NRGBA{0, 0, 0, 0xff})
	if got := r.Image().RGBAAt(32, 25); got.R != 0 || got.G != 0 {
		t.Errorf("indicator pixel = %v", got)
	}

	// half transparent white over black
	r.Clear(color.NRGBA{0, 0, 0, 0xff})
	r.FillCircle(10, 10, 3, color.NRGBA{255, 255, 255, 128})
	if got := r.Image().RGBAAt(10, 10); got.R < 115 || got.R > 140 {
		t.Errorf("blend = %v", got)
	}
}

func TestRasterDashedRing(t *testing.T) {
	count := func(dash float64) int {
		r := NewRaster(100, 100)
		r.Clear(color.NRGBA{0, 0, 0, 0xff})
		r.StrokeCircle(50, 50, 30, dash, color.NRGBA{255, 255, 255, 0xff})
		n := 0
		for y := 0; y < 100; y++ {
			for x := 0; x < 100; x++ {
				if r.Image().RGBAAt(x, y).R > 0 {
					n++
				}
			}
		}
		return n
	}
	solid, dashed := count(0), count(10)
	if dashed == 0 || dashed >= solid*3/4 {
		t.Errorf("dashed ring should light roughly half: solid %d dashed %d", solid, dashed)
	}
}

func TestGIFRecording(t *testing.T) {
	r := NewRaster(120, 90)
	rec := NewGIFRecorder(50)
	renderFrames(t, r, vortex.Center, 4, func() { rec.Capture(r) })

	if rec.Len() != 4 {
		t.Fatalf("captured %d frames", rec.Len())
	}
	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 4 || anim.Delay[0] != 2 {
		t.Errorf("decoded %d frames, delay %d", len(anim.Image), anim.Delay[0])
	}
}

func TestGIFEmpty(t *testing.T) {
	rec := NewGIFRecorder(0)
	if rec.Delay() != 2 {
		t.Errorf("default delay = %d", rec.Delay())
	}
	if err := rec.Save(filepath.Join(t.TempDir(), "x.gif")); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestProfileToSVG(t *testing.T) {
	if ProfileToSVG([]float64{1}, []float64{1}, 100, 50, "#fff") != "" {
		t.Error("single point should produce nothing")
	}
	svg := ProfileToSVG([]float64{0, 1, 2}, []float64{0, 2, 1}, 100, 50, "#38bdf8")
	if !strings.Contains(svg, `stroke="#38bdf8"`) || strings.Count(svg, " L") != 2 {
		t.Errorf("unexpected path: %s", svg)
	}
}

func TestGIFDelayFloor(t *testing.T) {
	cases := map[int]int{0: 2, 10: 10, 30: 3, 50: 2, 60: 2, 120: 2, 1000: 2}
	for fps, want := range cases {
		if got := NewGIFRecorder(fps).Delay(); got != want {
			t.Errorf("fps %d: delay %d cs, want %d", fps, got, want)
		}
	}
}

func TestRasterDiscHighlight(t *testing.T) {
	r := NewRaster(80, 80)
	r.Clear(color.NRGBA{0, 0, 0, 0xff})
	inner := color.NRGBA{0xfb, 0x92, 0x3c, 0xff}
	outer := color.NRGBA{0xf9, 0x73, 0x16, 0xff}
	r.RadialCircle(40, 40, 24, 35, 35, inner, outer)

	near := r.Image().RGBAAt(35, 35)
	rim := r.Image().RGBAAt(40, 62)
	if near.G <= rim.G {
		t.Errorf("highlight should be lighter than the rim: %v vs %v", near, rim)
	}
	if out := r.Image().RGBAAt(5, 5); out.R != 0 {
		t.Errorf("gradient leaked outside the disc: %v", out)
	}
}

func TestRasterResize(t *testing.T) {
	r := NewRaster(10, 10)
	viz.Fit(r, viz.Box{W: 64, H: -3})
	if w, h := r.Bounds(); w != 64 || h != 0 {
		t.Errorf("bounds %dx%d", w, h)
	}
}
