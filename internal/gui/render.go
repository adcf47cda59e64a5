package gui

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const ringSegments = 48

// Window is a Surface over the raylib 2D draw calls. Calls are only valid
// between BeginDrawing and EndDrawing; the app guarantees that.
type Window struct {
	width, height int
}

func (w *Window) Bounds() (int, int) { return w.width, w.height }

// Resize records the framebuffer size reported by raylib after the user
// resizes the window.
func (w *Window) Resize(width, height int) { w.width, w.height = width, height }

func (w *Window) Available() bool { return rl.IsWindowReady() }

func (w *Window) Clear(c color.NRGBA) {
	rl.ClearBackground(rlColor(c))
}

func (w *Window) FillCircle(x, y, r float64, c color.NRGBA) {
	rl.DrawCircleV(vec(x, y), float32(r), rlColor(c))
}

// RadialCircle fills the body in the outer color and lays a gradient disc
// centered on the highlight over it, clipped to stay inside the body.
func (w *Window) RadialCircle(x, y, r, fx, fy float64, inner, outer color.NRGBA) {
	rl.DrawCircleV(vec(x, y), float32(r), rlColor(outer))
	hr := r - math.Hypot(fx-x, fy-y)
	if hr <= 0 {
		return
	}
	rl.DrawCircleGradient(int32(math.Round(fx)), int32(math.Round(fy)), float32(hr), rlColor(inner), rlColor(outer))
}

func (w *Window) StrokeCircle(x, y, r, dash float64, c color.NRGBA) {
	center, col := vec(x, y), rlColor(c)
	inner, outer := float32(r-0.5), float32(r+0.5)
	if dash <= 0 || r <= 0 {
		rl.DrawRing(center, inner, outer, 0, 360, ringSegments, col)
		return
	}
	// dash is an arc length; raylib wants degrees
	step := dash / r * 180 / math.Pi
	for a := 0.0; a < 360; a += 2 * step {
		end := math.Min(a+step, 360)
		rl.DrawRing(center, inner, outer, float32(a), float32(end), 4, col)
	}
}

func (w *Window) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(width), rlColor(c))
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func rlColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
