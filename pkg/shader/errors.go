package shader

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCreateShader is returned when the context hands out no shader object.
	ErrCreateShader = errors.New("failed to create shader")
	// ErrCreateProgram is returned when the context hands out no program object.
	ErrCreateProgram = errors.New("failed to create program")
)

// CompileError reports a stage that did not compile. Log is the driver's
// diagnostic text.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// LinkError reports a program that did not link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", strings.TrimRight(e.Log, "\x00\n "))
}
