package vortex

import (
	"fmt"
	"strings"
)

// Position is one of the observation points the test disc can orbit at.
type Position int

const (
	Center Position = iota
	InnerEdge
	OuterFlow
)

// Positions lists every position in slider order.
var Positions = [...]Position{Center, InnerEdge, OuterFlow}

// Profile is the static configuration attached to a position.
type Profile struct {
	Position     Position
	Radius       float64
	Label        string
	Description  string
	IsRotational bool
}

var profiles = [len(Positions)]Profile{
	Center: {
		Position:     Center,
		Radius:       40,
		Label:        "Near Center (Inner)",
		Description:  "Inside the vortex core. Velocity is low but increasing with distance from the center. Solid-body rotation causes local rotation.",
		IsRotational: true,
	},
	InnerEdge: {
		Position:     InnerEdge,
		Radius:       120,
		Label:        "Vortex Edge (Inner)",
		Description:  "At the periphery of the core. Velocity is at its peak. The fluid still exhibits significant local rotation (curl).",
		IsRotational: true,
	},
	OuterFlow: {
		Position:     OuterFlow,
		Radius:       220,
		Label:        "Farther Out (Outer)",
		Description:  "Outside the vortex core. Velocity decreases as 1/r. While there is bulk rotation, the local rotation (curl) is zero.",
		IsRotational: false,
	},
}

func (p Position) Valid() bool {
	return p >= Center && p <= OuterFlow
}

// Lookup returns the profile for p or ErrUnknownPosition.
func Lookup(p Position) (Profile, error) {
	if !p.Valid() {
		return Profile{}, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
	}
	return profiles[p], nil
}

// MustLookup is Lookup for callers that already hold a validated position.
func MustLookup(p Position) Profile {
	prof, err := Lookup(p)
	if err != nil {
		panic(err)
	}
	return prof
}

// Next moves one step outward, clamping at OuterFlow.
func (p Position) Next() Position {
	if p >= OuterFlow {
		return OuterFlow
	}
	return p + 1
}

// Prev moves one step inward, clamping at Center.
func (p Position) Prev() Position {
	if p <= Center {
		return Center
	}
	return p - 1
}

func (p Position) String() string {
	switch p {
	case Center:
		return "center"
	case InnerEdge:
		return "inner_edge"
	case OuterFlow:
		return "outer_flow"
	}
	return fmt.Sprintf("position(%d)", int(p))
}

// ParsePosition accepts the names produced by String, case-insensitively.
// Dashes are treated as underscores and the slider names (inner, outer) are accepted.
func ParsePosition(s string) (Position, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "center":
		return Center, nil
	case "inner_edge", "inner", "edge":
		return InnerEdge, nil
	case "outer_flow", "outer":
		return OuterFlow, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(text []byte) error {
	v, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
