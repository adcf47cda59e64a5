package viz

import (
	"github.com/rs/zerolog"
	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

// Token identifies one frame chain. Frames carrying an older token are dropped.
type Token uint64

// Input is the snapshot of externally owned selection state.
type Input struct {
	Position vortex.Position
	Playing  bool
}

// Result describes what a call to Frame did.
type Result int

const (
	// Rendered means the scene was stepped (if playing) and painted.
	Rendered Result = iota
	// Skipped means the chain is live but no usable surface was attached.
	Skipped
	// Cancelled means the token is stale; the caller must not reschedule.
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Rendered:
		return "rendered"
	case Skipped:
		return "skipped"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Loop drives the per-frame cycle for one scene. The host schedules Frame
// once per display refresh and keeps rescheduling with the same token until
// Frame returns Cancelled. Attach, Configure and Detach each retire the
// current token, so at most one chain ever runs against the surface.
//
// Loop is single threaded: all methods must be called from the same goroutine.
type Loop struct {
	scene   *sim.Scene
	painter Painter
	surface Surface
	input   Input
	profile vortex.Profile
	token   Token
	live    bool
	frames  int
	log     zerolog.Logger
}

func NewLoop(scene *sim.Scene, painter Painter, log zerolog.Logger) *Loop {
	return &Loop{
		scene:   scene,
		painter: painter,
		profile: vortex.MustLookup(vortex.Center),
		log:     log.With().Str("component", "loop").Logger(),
	}
}

// Attach binds a surface and starts a fresh chain with the given input.
func (l *Loop) Attach(s Surface, in Input) (Token, error) {
	if err := l.setInput(in); err != nil {
		return l.token, err
	}
	l.surface = s
	tok := l.restart()
	l.log.Debug().Uint64("token", uint64(tok)).Str("position", in.Position.String()).Msg("surface attached")
	return tok, nil
}

// Configure swaps the input snapshot, cancelling the running chain. With no
// surface attached the new chain only produces skipped frames.
func (l *Loop) Configure(in Input) (Token, error) {
	if err := l.setInput(in); err != nil {
		return l.token, err
	}
	tok := l.restart()
	l.log.Debug().
		Uint64("token", uint64(tok)).
		Str("position", in.Position.String()).
		Bool("playing", in.Playing).
		Msg("loop reconfigured")
	return tok, nil
}

// Detach releases the surface and cancels the chain. Safe to call repeatedly.
func (l *Loop) Detach() {
	if !l.live && l.surface == nil {
		return
	}
	l.surface = nil
	l.live = false
	l.token++
	l.log.Debug().Uint64("token", uint64(l.token)).Int("frames", l.frames).Msg("surface detached")
}

// Frame runs one frame body for tok: tick when playing, then repaint.
func (l *Loop) Frame(tok Token) Result {
	if !l.live || tok != l.token {
		return Cancelled
	}
	if !usable(l.surface) {
		l.log.Trace().Err(ErrNoSurface).Uint64("token", uint64(tok)).Msg("frame skipped")
		return Skipped
	}
	l.scene.Step(l.profile, l.input.Playing)
	l.painter.Paint(l.surface, l.scene, l.profile)
	l.frames++
	return Rendered
}

func (l *Loop) Token() Token            { return l.token }
func (l *Loop) Active() bool            { return l.live }
func (l *Loop) Input() Input            { return l.input }
func (l *Loop) Profile() vortex.Profile { return l.profile }
func (l *Loop) Scene() *sim.Scene       { return l.scene }
func (l *Loop) Surface() Surface        { return l.surface }
func (l *Loop) Frames() int             { return l.frames }

// Classification exposes the canned info for the active position.
func (l *Loop) Classification() vortex.Classification {
	c, _ := vortex.Classify(l.input.Position)
	return c
}

func (l *Loop) setInput(in Input) error {
	prof, err := vortex.Lookup(in.Position)
	if err != nil {
		return err
	}
	l.input, l.profile = in, prof
	return nil
}

func (l *Loop) restart() Token {
	l.token++
	l.live = true
	return l.token
}
