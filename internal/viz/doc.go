// Package viz draws the vortex scene and drives its frame loop.
//
// A [Painter] repaints a whole [Surface] each frame. The [Loop] owns the
// frame chain: hosts call Frame with the token they were handed by Attach or
// Configure and stop rescheduling once it reports [Cancelled].
//
// The terminal front end pairs the loop with a braille [Canvas]:
//
//	Space/P - Play/Pause
//	1 2 3   - Center / Inner edge / Outer flow
//	←/→     - Move between positions
//	T       - Cycle color themes
//	?       - Show help overlay
package viz
