package window

import (
	"fmt"

	"github.com/karvel/fenestra/pkg/kernel"
)

// SillParams is the dimension set for a sill build. All lengths are mm.
type SillParams struct {
	// OpeningWidth is the clear width of the opening the sill sits under.
	OpeningWidth float64 `json:"opening_width"`

	// HostThickness is the depth of the host wall.
	HostThickness float64 `json:"host_thickness"`

	// Thickness is the height of the sill slab.
	Thickness float64 `json:"thickness"`

	// FrontProtrusion is how far the sill juts out past the wall face.
	FrontProtrusion float64 `json:"front_protrusion"`

	// LateralProtrusion extends the sill past the opening on each side.
	LateralProtrusion float64 `json:"lateral_protrusion"`

	// InnerCovering trims the sill back from the inner wall face.
	InnerCovering float64 `json:"inner_covering"`
}

// Validate checks the sill dimension set. Protrusions and covering may be
// zero; the core lengths must be positive and the resulting slab must keep
// a positive length.
func (p SillParams) Validate() error {
	lengths := []struct {
		field string
		value float64
	}{
		{"opening_width", p.OpeningWidth},
		{"host_thickness", p.HostThickness},
		{"thickness", p.Thickness},
	}
	for _, l := range lengths {
		if l.value <= 0 {
			return &ParamError{Field: l.field, Value: l.value}
		}
	}
	if p.FrontProtrusion < 0 || p.LateralProtrusion < 0 || p.InnerCovering < 0 {
		return &ParamError{Field: "protrusion", Value: -1}
	}
	if p.HostThickness+p.FrontProtrusion-p.InnerCovering <= 0 {
		return &DegenerateGeometryError{
			Part:   "sill",
			Detail: fmt.Sprintf("inner covering %g consumes the whole %g slab length", p.InnerCovering, p.HostThickness+p.FrontProtrusion),
		}
	}
	return nil
}

// BuildSill returns the solid of a plain rectangular sill: a box widened by
// the lateral protrusions, spanning the wall depth plus the front
// protrusion minus the inner covering, seated centered under the opening
// with its top face at z=0.
func BuildSill(k kernel.Kernel, p SillParams) (kernel.Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := p.OpeningWidth + p.LateralProtrusion*2
	l := p.HostThickness + p.FrontProtrusion - p.InnerCovering
	box := k.MakeBox(w, l, p.Thickness)
	return k.Translate(box, kernel.Vec3{
		X: -w / 2,
		Y: -p.HostThickness/2 + p.InnerCovering,
		Z: -p.Thickness,
	}), nil
}
