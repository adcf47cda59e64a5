package sim

import (
	"math/rand"
	"time"

	"github.com/san-kum/vortexcurl/internal/vortex"
)

// Scene is the core state owned by a single render loop: the field, the
// tracer swarm and the disc clock. It is not safe for concurrent use.
type Scene struct {
	Field     vortex.Field
	Particles *Particles
	Clock     Clock
	ticks     int
}

type Option func(*sceneOptions)

type sceneOptions struct {
	field     vortex.Field
	count     int
	maxRadius float64
	seed      int64
}

func WithField(f vortex.Field) Option { return func(o *sceneOptions) { o.field = f } }
func WithTracerCount(n int) Option    { return func(o *sceneOptions) { o.count = n } }
func WithMaxRadius(r float64) Option  { return func(o *sceneOptions) { o.maxRadius = r } }
func WithSeed(seed int64) Option      { return func(o *sceneOptions) { o.seed = seed } }

// NewScene builds a scene with the default field and TracerCount tracers.
// A zero seed draws the layout from the wall clock.
func NewScene(opts ...Option) *Scene {
	o := sceneOptions{
		field:     vortex.DefaultField(),
		count:     TracerCount,
		maxRadius: MaxVisualRadius,
	}
	for _, opt := range opts {
		opt(&o)
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Scene{
		Field:     o.field,
		Particles: NewParticles(o.count, o.maxRadius, rand.New(rand.NewSource(seed))),
	}
}

// Step runs one simulation tick: the disc clock first, then the tracers.
func (s *Scene) Step(prof vortex.Profile, playing bool) {
	if !playing {
		return
	}
	s.Clock.Tick(s.Field, prof, true)
	s.Particles.Advance(s.Field)
	s.ticks++
}

// Ticks counts the steps taken while playing.
func (s *Scene) Ticks() int { return s.ticks }
