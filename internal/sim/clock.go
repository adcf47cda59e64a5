package sim

import "github.com/san-kum/vortexcurl/internal/vortex"

// Clock holds the two angular accumulators of the test disc.
type Clock struct {
	// OrbitalAngle is the disc's angle around the vortex center.
	OrbitalAngle float64
	// SpinAngle is the disc's rotation about its own center.
	SpinAngle float64
}

// Tick advances the clock by one step for the given profile. Nothing moves
// while paused. Spin follows the orbital rate in the rotational regime and
// stays frozen otherwise.
func (c *Clock) Tick(f vortex.Field, prof vortex.Profile, playing bool) {
	if !playing {
		return
	}
	omega := f.AngularVelocity(prof.Radius)
	c.OrbitalAngle += omega
	if prof.IsRotational {
		c.SpinAngle += omega
	}
}
