package window

import (
	"fmt"

	"github.com/karvel/fenestra/pkg/kernel"
)

// BuildGlass returns the solid of a flat glass panel sized to sit inside a
// frame opening. frameExtentW and frameExtentH are the total frame material
// across the opening (both borders); reveal is the margin by which the
// panel overlaps back into the rebate on each side. The panel's bottom
// edge sits at frameExtentW-reveal in local z and the solid is extruded
// along +Y by thickness. Depth placement (recessing to mid-frame) is the
// caller's job.
func BuildGlass(k kernel.Kernel, openingW, openingH, frameExtentW, frameExtentH, reveal, thickness float64) (kernel.Solid, error) {
	w := openingW - frameExtentW + reveal*2
	h := openingH - frameExtentH + reveal*2
	if w <= 0 || h <= 0 {
		return nil, &DegenerateGeometryError{
			Part:   "glass",
			Detail: fmt.Sprintf("frame extent %gx%g leaves no glazed area in a %gx%g opening", frameExtentW, frameExtentH, openingW, openingH),
		}
	}

	zBase := frameExtentW - reveal
	zTop := frameExtentH - reveal + h
	pts := []kernel.Vec3{
		{X: -w / 2, Z: zBase},
		{X: w / 2, Z: zBase},
		{X: w / 2, Z: zTop},
		{X: -w / 2, Z: zTop},
	}

	wire, err := k.MakePolygon(pts)
	if err != nil {
		return nil, fmt.Errorf("glass panel: %w", err)
	}
	face, err := k.FillFace(wire)
	if err != nil {
		return nil, fmt.Errorf("glass panel: %w", err)
	}
	s, err := k.Extrude(face, kernel.Vec3{Y: thickness})
	if err != nil {
		return nil, fmt.Errorf("glass panel: %w", err)
	}
	return s, nil
}
