package export

import (
	"image"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// gradientFocus is the radius of the bright spot at the disc highlight.
const gradientFocus = 2.0

// Raster is a pixel Surface drawn with an HTML5-style canvas on the
// software backend, so it needs no window or GL context.
type Raster struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
}

func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Image is the backing framebuffer. It is reused between frames.
func (r *Raster) Image() *image.RGBA { return r.backend.Image }

func (r *Raster) Bounds() (int, int) {
	b := r.backend.Image.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.backend = softwarebackend.New(w, h)
	r.cv = canvas.New(r.backend)
}

func (r *Raster) Clear(c color.NRGBA) {
	w, h := r.Bounds()
	r.cv.SetFillStyle(c)
	r.cv.FillRect(0, 0, float64(w), float64(h))
}

func (r *Raster) FillCircle(x, y, rad float64, c color.NRGBA) {
	if rad <= 0 {
		return
	}
	r.cv.SetFillStyle(c)
	r.cv.BeginPath()
	r.cv.Arc(x, y, rad, 0, 2*math.Pi, false)
	r.cv.Fill()
}

func (r *Raster) RadialCircle(x, y, rad, fx, fy float64, inner, outer color.NRGBA) {
	if rad <= 0 {
		return
	}
	grad := r.cv.CreateRadialGradient(fx, fy, math.Min(gradientFocus, rad), x, y, rad)
	grad.AddColorStop(0, inner)
	grad.AddColorStop(1, outer)
	r.cv.SetFillStyle(grad)
	r.cv.BeginPath()
	r.cv.Arc(x, y, rad, 0, 2*math.Pi, false)
	r.cv.Fill()
}

func (r *Raster) StrokeCircle(x, y, rad, dash float64, c color.NRGBA) {
	if rad <= 0 {
		return
	}
	if dash > 0 {
		r.cv.SetLineDash([]float64{dash, dash})
		defer r.cv.SetLineDash(nil)
	}
	r.cv.SetStrokeStyle(c)
	r.cv.SetLineWidth(1)
	r.cv.BeginPath()
	r.cv.Arc(x, y, rad, 0, 2*math.Pi, false)
	r.cv.Stroke()
}

func (r *Raster) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.cv.SetStrokeStyle(c)
	r.cv.SetLineWidth(math.Max(width, 1))
	r.cv.SetLineCap(canvas.Round)
	r.cv.BeginPath()
	r.cv.MoveTo(x0, y0)
	r.cv.LineTo(x1, y1)
	r.cv.Stroke()
	r.cv.SetLineCap(canvas.Butt)
}
