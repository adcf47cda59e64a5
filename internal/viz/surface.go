package viz

import (
	"errors"
	"image/color"
)

// ErrNoSurface is reported when a frame runs before a surface is attached
// or after it was detached.
var ErrNoSurface = errors.New("viz: no drawing surface attached")

// Surface is a 2D drawing target in pixel coordinates with the origin at the
// top-left corner. Colors carry straight (non-premultiplied) alpha.
type Surface interface {
	Bounds() (w, h int)
	Clear(c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
	// RadialCircle fills a circle shaded from inner at (fx, fy) to outer at the rim.
	RadialCircle(x, y, r, fx, fy float64, inner, outer color.NRGBA)
	// StrokeCircle outlines a circle; dash > 0 alternates drawn and skipped arcs of that length.
	StrokeCircle(x, y, r, dash float64, c color.NRGBA)
	Line(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// Resizable surfaces can have their pixel dimensions reset.
type Resizable interface {
	Surface
	Resize(w, h int)
}

// Availability is implemented by surfaces that can be temporarily unusable,
// for example a window that has not been created yet.
type Availability interface {
	Available() bool
}

// Box is a container's content box in pixels.
type Box struct {
	W, H int
}

// Fit resizes s to match the content box. Negative sizes collapse to zero.
// Calling it again with the same box leaves the surface unchanged.
func Fit(s Resizable, box Box) {
	w, h := box.W, box.H
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if cw, ch := s.Bounds(); cw == w && ch == h {
		return
	}
	s.Resize(w, h)
}

func usable(s Surface) bool {
	if s == nil {
		return false
	}
	if a, ok := s.(Availability); ok && !a.Available() {
		return false
	}
	w, h := s.Bounds()
	return w > 0 && h > 0
}
