package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/vortexcurl/internal/sim"
	"github.com/san-kum/vortexcurl/internal/vortex"
)

// RadialProfile samples the field along a ray from the center.
type RadialProfile struct {
	Radii     []float64
	Omega     []float64
	Speed     []float64
	Vorticity []float64
}

// SampleRadial evaluates the field at n evenly spaced radii in (0, maxRadius].
func SampleRadial(f vortex.Field, maxRadius float64, n int) *RadialProfile {
	if n <= 0 || maxRadius <= 0 {
		return &RadialProfile{}
	}
	p := &RadialProfile{
		Radii:     make([]float64, n),
		Omega:     make([]float64, n),
		Speed:     make([]float64, n),
		Vorticity: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		r := maxRadius * float64(i+1) / float64(n)
		p.Radii[i] = r
		p.Omega[i] = f.AngularVelocity(r)
		p.Speed[i] = f.Speed(r)
		p.Vorticity[i] = f.Vorticity(r)
	}
	return p
}

// PeakSpeed returns the radius and value of the largest sampled speed.
func (p *RadialProfile) PeakSpeed() (radius, speed float64) {
	for i, v := range p.Speed {
		if v > speed {
			radius, speed = p.Radii[i], v
		}
	}
	return
}

// OrbitAudit summarizes one full orbit of the test disc.
type OrbitAudit struct {
	Position      vortex.Position
	Radius        float64
	Omega         float64
	TicksPerOrbit int
	SpinTurns     float64
}

// MaxOrbitTicks bounds the orbits AuditOrbit will report on.
const MaxOrbitTicks = 1 << 40

// ErrOrbitTooSlow is returned when one orbit would take more than MaxOrbitTicks.
var ErrOrbitTooSlow = errors.New("analysis: orbit too slow to audit")

// AuditOrbit reports how many ticks the disc needs for one orbit and how many
// turns it makes about its own center on the way. The per-tick rates come
// from a single clock tick; the orbit itself is counted in closed form.
func AuditOrbit(f vortex.Field, pos vortex.Position) (OrbitAudit, error) {
	prof, err := vortex.Lookup(pos)
	if err != nil {
		return OrbitAudit{}, err
	}
	omega := f.AngularVelocity(prof.Radius)
	audit := OrbitAudit{Position: pos, Radius: prof.Radius, Omega: omega}
	if omega <= 0 {
		return audit, nil
	}

	ticks := math.Ceil(2 * math.Pi / omega)
	if math.IsInf(ticks, 0) || math.IsNaN(ticks) || ticks > MaxOrbitTicks {
		return audit, fmt.Errorf("%w: omega %g at r=%g", ErrOrbitTooSlow, omega, prof.Radius)
	}

	var c sim.Clock
	c.Tick(f, prof, true)
	audit.TicksPerOrbit = int(ticks)
	audit.SpinTurns = ticks * c.SpinAngle / (2 * math.Pi)
	return audit, nil
}
