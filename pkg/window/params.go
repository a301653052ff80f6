// Package window builds parametric window assemblies: a rectangular fixed
// frame, one openable sash and glass panel per bay, and accessory parts
// such as sills. All geometry is produced through the kernel interface and
// every build is a pure function of its parameters.
//
// Coordinate contract: profiles are drawn in the XZ plane, centered on the
// local vertical axis (x spans ±width/2) with their base at z=0, and are
// extruded along +Y (the depth axis). Every builder and the composer share
// this convention.
package window

// maxPanes is the largest supported pane count for the multi-bay layout.
const maxPanes = 9

// Params is the dimension set for one window build. All lengths are mm.
type Params struct {
	// OpeningWidth and OpeningHeight are the clear size of the wall
	// opening the window fills.
	OpeningWidth  float64 `json:"opening_width"`
	OpeningHeight float64 `json:"opening_height"`

	// OpeningThickness is the depth of the host wall. It does not affect
	// the window geometry itself but is part of the parameter contract
	// and sizes accessories such as sills.
	OpeningThickness float64 `json:"opening_thickness"`

	// FrameWidth is the face width of a frame member. Members are square,
	// so the same value is used horizontally and vertically.
	FrameWidth float64 `json:"frame_width"`

	// FrameThickness is the extrusion depth of frame members.
	FrameThickness float64 `json:"frame_thickness"`

	// GlassThickness is the thickness of each glass panel.
	GlassThickness float64 `json:"glass_thickness"`

	// Panes is the number of openable bays. 1 builds a single sash,
	// 2 through 9 partition the opening into equal-width bays.
	Panes int `json:"panes"`
}

// DefaultParams returns the stock dimension set: a 1200x1400 opening in a
// 300 mm wall with 50 mm square frame members and 21 mm glazing.
func DefaultParams() Params {
	return Params{
		OpeningWidth:     1200,
		OpeningHeight:    1400,
		OpeningThickness: 300,
		FrameWidth:       50,
		FrameThickness:   50,
		GlassThickness:   21,
		Panes:            1,
	}
}

// Validate checks that every length is positive. Pane count bounds are
// enforced by the composer's state machine, not here.
func (p Params) Validate() error {
	lengths := []struct {
		field string
		value float64
	}{
		{"opening_width", p.OpeningWidth},
		{"opening_height", p.OpeningHeight},
		{"opening_thickness", p.OpeningThickness},
		{"frame_width", p.FrameWidth},
		{"frame_thickness", p.FrameThickness},
		{"glass_thickness", p.GlassThickness},
	}
	for _, l := range lengths {
		if l.value <= 0 {
			return &ParamError{Field: l.field, Value: l.value}
		}
	}
	return nil
}

// LightFactor returns the fraction of the opening width left glazed after
// frame material is accounted for: the outer frame contributes one border
// pair, and each bay's sash another.
func LightFactor(openingWidth, frameWidth float64, panes int) float64 {
	frameOverall := float64(panes)*2*frameWidth + 2*frameWidth
	return (openingWidth - frameOverall) / openingWidth
}
