// Package analysis provides radial diagnostics for the vortex field.
//
//   - [SampleRadial]: omega, speed and vorticity along a ray
//   - [AuditOrbit]: spin turns of the test disc over one full orbit
//
// A disc inside the core turns once per orbit; outside it keeps its
// orientation:
//
//	a, _ := analysis.AuditOrbit(vortex.DefaultField(), vortex.OuterFlow)
//	// a.SpinTurns == 0
package analysis
