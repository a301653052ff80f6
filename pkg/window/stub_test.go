package window

import (
	"fmt"

	"github.com/karvel/fenestra/pkg/kernel"
)

// stubKernel is an analytic kernel for testing the builders: solids carry
// exact bounding boxes computed from the polygon points, so geometric
// assertions need no meshing and no tolerance beyond float rounding.
type stubKernel struct{}

type stubSolid struct {
	min, max kernel.Vec3
}

func (s *stubSolid) BoundingBox() (min, max kernel.Vec3) { return s.min, s.max }

type stubWire struct {
	pts []kernel.Vec3
}

func (w *stubWire) Points() []kernel.Vec3 { return w.pts }

type stubFace struct {
	wire *stubWire
}

func (f *stubFace) Outline() kernel.Wire { return f.wire }

var (
	_ kernel.Kernel = (*stubKernel)(nil)
	_ kernel.Solid  = (*stubSolid)(nil)
)

func (k *stubKernel) MakePolygon(pts []kernel.Vec3) (kernel.Wire, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("stub: polygon needs at least 3 points")
	}
	return &stubWire{pts: pts}, nil
}

func (k *stubKernel) FillFace(w kernel.Wire) (kernel.Face, error) {
	return &stubFace{wire: w.(*stubWire)}, nil
}

func (k *stubKernel) Extrude(f kernel.Face, dir kernel.Vec3) (kernel.Solid, error) {
	pts := f.(*stubFace).wire.pts
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min = kernel.Vec3{X: minf(min.X, p.X), Y: minf(min.Y, p.Y), Z: minf(min.Z, p.Z)}
		max = kernel.Vec3{X: maxf(max.X, p.X), Y: maxf(max.Y, p.Y), Z: maxf(max.Z, p.Z)}
	}
	// Sweep the planar bounding box along the extrusion direction.
	min = kernel.Vec3{X: min.X + minf(dir.X, 0), Y: min.Y + minf(dir.Y, 0), Z: min.Z + minf(dir.Z, 0)}
	max = kernel.Vec3{X: max.X + maxf(dir.X, 0), Y: max.Y + maxf(dir.Y, 0), Z: max.Z + maxf(dir.Z, 0)}
	return &stubSolid{min: min, max: max}, nil
}

func (k *stubKernel) MakeBox(w, l, h float64) kernel.Solid {
	return &stubSolid{max: kernel.Vec3{X: w, Y: l, Z: h}}
}

func (k *stubKernel) MakeCompound(solids []kernel.Solid) kernel.Solid {
	return kernel.NewCompound(solids)
}

func (k *stubKernel) Translate(s kernel.Solid, v kernel.Vec3) kernel.Solid {
	if c, ok := s.(*kernel.Compound); ok {
		children := c.Solids()
		moved := make([]kernel.Solid, len(children))
		for i, child := range children {
			moved[i] = k.Translate(child, v)
		}
		return kernel.NewCompound(moved)
	}
	ss := s.(*stubSolid)
	return &stubSolid{min: ss.min.Add(v), max: ss.max.Add(v)}
}

func (k *stubKernel) Rotate(s kernel.Solid, r kernel.Rotation) kernel.Solid { return s }

func (k *stubKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	return &kernel.Mesh{}, nil
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
