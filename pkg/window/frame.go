package window

import (
	"fmt"

	"github.com/karvel/fenestra/pkg/kernel"
)

// sideNames label the four frame legs in loop order.
var sideNames = [4]string{"bottom", "right", "top", "left"}

// BuildFrame returns the solid of a closed rectangular frame: an outer
// rectangle minus an inner rectangle, built as four trapezoidal legs. Each
// leg is a quadrilateral of two outer and two inner corners, filled into a
// face and extruded along +Y by depth. The legs are grouped into one
// compound, not unioned, so the coincident faces at the corners remain as
// seams.
//
// The border must be strictly less than half the corresponding outer
// dimension or the inner rectangle inverts; that case is rejected before
// any kernel call.
func BuildFrame(k kernel.Kernel, outerW, outerH, borderW, borderH, depth float64) (kernel.Solid, error) {
	if borderW*2 >= outerW || borderH*2 >= outerH {
		return nil, &DegenerateGeometryError{
			Part:   "frame",
			Detail: fmt.Sprintf("border %gx%g does not fit inside a %gx%g outline", borderW, borderH, outerW, outerH),
		}
	}

	outer := rectCorners(outerW, outerH, 0)
	inner := rectCorners(outerW-borderW*2, outerH-borderH*2, borderH)

	legs := make([]kernel.Solid, 0, 4)
	for side := 0; side < 4; side++ {
		wire, err := k.MakePolygon(legLoop(outer, inner, side))
		if err != nil {
			return nil, fmt.Errorf("frame %s leg: %w", sideNames[side], err)
		}
		face, err := k.FillFace(wire)
		if err != nil {
			return nil, fmt.Errorf("frame %s leg: %w", sideNames[side], err)
		}
		leg, err := k.Extrude(face, kernel.Vec3{Y: depth})
		if err != nil {
			return nil, fmt.Errorf("frame %s leg: %w", sideNames[side], err)
		}
		legs = append(legs, leg)
	}
	return k.MakeCompound(legs), nil
}

// rectCorners returns the corners of a w x h rectangle in the XZ plane,
// centered on x=0 with its base at zBase, ordered counter-clockwise from
// the bottom-left.
func rectCorners(w, h, zBase float64) [4]kernel.Vec3 {
	return [4]kernel.Vec3{
		{X: -w / 2, Z: zBase},
		{X: w / 2, Z: zBase},
		{X: w / 2, Z: zBase + h},
		{X: -w / 2, Z: zBase + h},
	}
}

// legLoop builds the closed quadrilateral for one frame side. Side i runs
// from outer corner i to outer corner i+1, steps inward, and returns along
// the inner rectangle: outer-start, outer-end, inner-end, inner-start,
// closed back to outer-start.
func legLoop(outer, inner [4]kernel.Vec3, side int) []kernel.Vec3 {
	a, b := side, (side+1)%4
	return []kernel.Vec3{outer[a], outer[b], inner[b], inner[a], outer[a]}
}
