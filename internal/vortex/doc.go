// Package vortex provides the analytic Rankine vortex used by the
// visualization.
//
// The package is pure and allocation free:
//
//   - [Field]: two-zone angular velocity law (solid-body core, irrotational
//     exterior)
//   - [Position]: the closed set of observation positions
//   - [Profile]: static per-position configuration
//   - [Classification]: rotational flag and canned text for info panels
//
// # Example
//
//	f := vortex.DefaultField()
//	p := vortex.MustLookup(vortex.OuterFlow)
//	omega := f.AngularVelocity(p.Radius)
package vortex
