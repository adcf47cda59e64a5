package sim

import (
	"math"
	"math/rand"

	"github.com/san-kum/vortexcurl/internal/vortex"
)

const (
	// TracerCount is the size of the background swarm.
	TracerCount = 400
	// MaxVisualRadius bounds tracer radii.
	MaxVisualRadius = 400.0
)

// Tracer is a passive particle carried around the vortex center.
// Radius never changes after creation; only Angle evolves.
type Tracer struct {
	Radius float64
	Angle  float64
}

// Point returns the Cartesian position of the tracer relative to (cx, cy).
func (t Tracer) Point(cx, cy float64) (float64, float64) {
	return cx + math.Cos(t.Angle)*t.Radius, cy + math.Sin(t.Angle)*t.Radius
}

// Particles is the fixed-size tracer swarm.
type Particles struct {
	tracers []Tracer
}

// NewParticles scatters count tracers with independent uniform radius in
// [0, maxRadius) and angle in [0, 2π).
func NewParticles(count int, maxRadius float64, rng *rand.Rand) *Particles {
	if count < 0 {
		count = 0
	}
	tracers := make([]Tracer, count)
	for i := range tracers {
		tracers[i] = Tracer{
			Radius: rng.Float64() * maxRadius,
			Angle:  rng.Float64() * 2 * math.Pi,
		}
	}
	return &Particles{tracers: tracers}
}

// Advance moves every tracer forward one tick along the field.
func (p *Particles) Advance(f vortex.Field) {
	for i := range p.tracers {
		p.tracers[i].Angle += f.AngularVelocity(p.tracers[i].Radius)
	}
}

func (p *Particles) Len() int { return len(p.tracers) }

// Tracers exposes the swarm for painting. Callers must not modify it.
func (p *Particles) Tracers() []Tracer { return p.tracers }
