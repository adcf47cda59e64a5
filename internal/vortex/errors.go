package vortex

import "errors"

var (
	// ErrUnknownPosition indicates a position outside the closed enumerated set.
	ErrUnknownPosition = errors.New("vortex: unknown observation position")

	// ErrInvalidRadius indicates a non-positive or non-finite radius.
	ErrInvalidRadius = errors.New("vortex: radius must be finite and positive")

	// ErrInvalidOmega indicates a non-finite base angular velocity.
	ErrInvalidOmega = errors.New("vortex: base omega must be finite")
)
