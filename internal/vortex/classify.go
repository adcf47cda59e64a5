package vortex

const (
	coreTranscript = "Let’s start with the water inside the vortex. At the center, the velocity is zero. " +
		"This is similar to a hurricane or a tornado. As we move farther out from the center, the speed increases.\n\n" +
		"If we ignore the bulk rotation, we can see that a small disc of water is also rotating about its own center. " +
		"This means that there is local rotation."

	outerTranscript = "But what about the flow outside the vortex? Clearly, there is still bulk rotation of the water. " +
		"However, the small disc is not rotating at all about its own center. Therefore, there is no local rotation.\n\n" +
		"In other words, this velocity field has a curl of zero."
)

// Classification is what the info panel and controls read for the active position.
type Classification struct {
	Position      Position `json:"position" yaml:"position"`
	Label         string   `json:"label" yaml:"label"`
	ShortName     string   `json:"short_name" yaml:"short_name"`
	IsRotational  bool     `json:"is_rotational" yaml:"is_rotational"`
	CurlState     string   `json:"curl_state" yaml:"curl_state"`
	FlowType      string   `json:"flow_type" yaml:"flow_type"`
	VelocityClass string   `json:"velocity_class" yaml:"velocity_class"`
	Description   string   `json:"description" yaml:"description"`
	Transcript    string   `json:"transcript" yaml:"transcript"`
}

// Classify selects the canned classification for p.
func Classify(p Position) (Classification, error) {
	prof, err := Lookup(p)
	if err != nil {
		return Classification{}, err
	}

	c := Classification{
		Position:     p,
		Label:        prof.Label,
		IsRotational: prof.IsRotational,
		Description:  prof.Description,
		CurlState:    "Zero Curl",
		FlowType:     "Irrotational",
	}
	if prof.IsRotational {
		c.CurlState = "Non-Zero Curl"
		c.FlowType = "Rotational"
	}

	switch p {
	case Center:
		c.ShortName, c.VelocityClass, c.Transcript = "Center", "Minimal", coreTranscript
	case InnerEdge:
		c.ShortName, c.VelocityClass, c.Transcript = "Inner", "Maximum", coreTranscript
	case OuterFlow:
		c.ShortName, c.VelocityClass, c.Transcript = "Outer", "Low (1/r)", outerTranscript
	}
	return c, nil
}
