package window

import (
	"errors"
	"fmt"
)

// ParamError reports a dimension that is not a positive length.
type ParamError struct {
	Field string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("window: parameter %s must be a positive length, got %g", e.Field, e.Value)
}

// LightFactorError reports a build rejected because frame material would
// consume too much of the opening width. It is a recoverable, reported
// condition: the caller gets the message and no geometry.
type LightFactorError struct {
	Panes  int
	Factor float64
	Min    float64
}

func (e *LightFactorError) Error() string {
	return fmt.Sprintf("window: %d panes leave %.1f%% of the opening glazed, below the %.0f%% minimum",
		e.Panes, e.Factor*100, e.Min*100)
}

// PaneCountError reports a pane count the composer does not support.
// Every branch of the pane-count state machine terminates in either a
// built assembly or this error; there is no silent fallthrough.
type PaneCountError struct {
	Count  int
	Reason string
}

func (e *PaneCountError) Error() string {
	return fmt.Sprintf("window: unsupported pane count %d: %s", e.Count, e.Reason)
}

// DegenerateGeometryError reports parameters that would produce an
// inverted or self-intersecting profile. It is detected before any kernel
// call: an invalid polygon must never reach face filling.
type DegenerateGeometryError struct {
	Part   string // "frame", "glass", "sill"
	Detail string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("window: degenerate %s geometry: %s", e.Part, e.Detail)
}

// ErrorKind classifies a build error for callers that report over a wire
// protocol. It returns "" for nil and for errors outside the window
// taxonomy (kernel faults included).
func ErrorKind(err error) string {
	var (
		paramErr *ParamError
		lightErr *LightFactorError
		paneErr  *PaneCountError
		degenErr *DegenerateGeometryError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &paramErr):
		return "invalid_parameter"
	case errors.As(err, &lightErr):
		return "light_factor"
	case errors.As(err, &paneErr):
		return "unsupported_panes"
	case errors.As(err, &degenErr):
		return "degenerate_geometry"
	default:
		return ""
	}
}
