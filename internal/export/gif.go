package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// ErrNoFrames is returned when encoding a recording that captured nothing.
var ErrNoFrames = errors.New("export: no frames captured")

// GIFRecorder collects raster frames into a looping animation.
type GIFRecorder struct {
	delay  int
	frames []*image.Paletted
}

// minDelay is the shortest frame delay, in hundredths of a second, that
// viewers honor. Shorter delays get stretched to 10 by most of them.
const minDelay = 2

// NewGIFRecorder records at roughly fps frames per second, capped at 50.
func NewGIFRecorder(fps int) *GIFRecorder {
	delay := minDelay
	if fps > 0 {
		delay = 100 / fps
	}
	if delay < minDelay {
		delay = minDelay
	}
	return &GIFRecorder{delay: delay}
}

// Capture quantizes the raster's current contents into a new frame.
func (g *GIFRecorder) Capture(r *Raster) {
	src := r.Image()
	frame := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	g.frames = append(g.frames, frame)
}

func (g *GIFRecorder) Len() int   { return len(g.frames) }
func (g *GIFRecorder) Delay() int { return g.delay }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIFRecorder) Save(path string) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
