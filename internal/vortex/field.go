package vortex

import "math"

const (
	// DefaultCoreRadius separates the solid-body core from the irrotational exterior.
	DefaultCoreRadius = 150.0
	// DefaultBaseOmega is the core angular velocity in radians per tick.
	DefaultBaseOmega = 0.02
)

// Field is a Rankine vortex expressed in angular form.
type Field struct {
	CoreRadius float64
	BaseOmega  float64
}

func DefaultField() Field {
	return Field{CoreRadius: DefaultCoreRadius, BaseOmega: DefaultBaseOmega}
}

// AngularVelocity returns the angle swept per tick at the given radius.
// Inside the core every radius sweeps BaseOmega; outside, the rate falls off
// as the inverse square of the radius.
func (f Field) AngularVelocity(radius float64) float64 {
	if radius <= f.CoreRadius {
		return f.BaseOmega
	}
	return f.BaseOmega * f.CoreRadius * f.CoreRadius / (radius * radius)
}

// Speed is the tangential speed omega(r)*r. It peaks at the core boundary.
func (f Field) Speed(radius float64) float64 {
	return f.AngularVelocity(radius) * radius
}

// Vorticity is the curl of the velocity field: 2*omega in the core, zero outside.
func (f Field) Vorticity(radius float64) float64 {
	if radius <= f.CoreRadius {
		return 2 * f.BaseOmega
	}
	return 0
}

// Rotational reports whether a fluid element at radius spins about its own center.
func (f Field) Rotational(radius float64) bool {
	return f.Vorticity(radius) != 0
}

func (f Field) Validate() error {
	if !validRadius(f.CoreRadius) {
		return ErrInvalidRadius
	}
	if math.IsNaN(f.BaseOmega) || math.IsInf(f.BaseOmega, 0) {
		return ErrInvalidOmega
	}
	return nil
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
