package gfx

import "errors"

var (
	// ErrContextUnavailable means the display surface produced no rendering context.
	ErrContextUnavailable = errors.New("unable to initialize the rendering context")
	// ErrUnknownTrigger is returned for labels or values outside the trigger table.
	ErrUnknownTrigger = errors.New("unknown trigger")
	// ErrMissingInput is returned when a linked program lacks a required
	// attribute or uniform.
	ErrMissingInput = errors.New("program input not active")
)
