// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
//
// Profiles are modeled as planar polygons in a coordinate plane (XY, XZ or
// YZ), filled via sdf.Polygon2D and swept with sdf.Extrude3D. The extruded
// slab is then rotated and translated into assembly space.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/karvel/fenestra/pkg/kernel"
)

// Compile-time interface checks.
var (
	_ kernel.Kernel = (*SdfxKernel)(nil)
	_ kernel.Solid  = (*sdfxSolid)(nil)
	_ kernel.Wire   = (*sdfxWire)(nil)
	_ kernel.Face   = (*sdfxFace)(nil)
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// planarTol is the tolerance used to decide that a loop lies in a
// coordinate plane and that two points coincide. Units are mm.
const planarTol = 1e-6

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max kernel.Vec3) {
	bb := s.s.BoundingBox()
	min = kernel.Vec3{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z}
	max = kernel.Vec3{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z}
	return min, max
}

// sdfxWire is an ordered closed loop of points. The closing point is not
// stored; MakePolygon strips an explicit repeat of the first point.
type sdfxWire struct {
	pts []kernel.Vec3
}

func (w *sdfxWire) Points() []kernel.Vec3 { return w.pts }

// sdfxFace is a filled planar polygon together with the coordinate plane it
// lives in: axis is the constant coordinate (0=X, 1=Y, 2=Z) and offset its
// value along that axis.
type sdfxFace struct {
	wire   *sdfxWire
	poly   sdf.SDF2
	axis   int
	offset float64
}

func (f *sdfxFace) Outline() kernel.Wire { return f.wire }

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// MakePolygon builds a closed loop from ordered points. An explicit closing
// point (last == first) is accepted and stripped.
func (k *SdfxKernel) MakePolygon(pts []kernel.Vec3) (kernel.Wire, error) {
	if len(pts) > 1 && coincident(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, fmt.Errorf("sdfx: polygon needs at least 3 distinct points, got %d", len(pts))
	}
	w := &sdfxWire{pts: make([]kernel.Vec3, len(pts))}
	copy(w.pts, pts)
	return w, nil
}

// FillFace fills a closed planar loop into a face. The loop must lie in a
// coordinate plane, enclose a non-zero area and be free of
// self-intersections; any violation is an error and no geometry is built.
func (k *SdfxKernel) FillFace(w kernel.Wire) (kernel.Face, error) {
	wire, ok := w.(*sdfxWire)
	if !ok {
		return nil, fmt.Errorf("sdfx: wire %T was not created by this kernel", w)
	}

	axis, offset, err := loopPlane(wire.pts)
	if err != nil {
		return nil, err
	}

	uv := project(wire.pts, axis)
	if math.Abs(loopArea(uv)) < planarTol {
		return nil, fmt.Errorf("sdfx: degenerate polygon: loop encloses zero area")
	}
	if selfIntersects(uv) {
		return nil, fmt.Errorf("sdfx: polygon loop self-intersects")
	}

	poly, err := sdf.Polygon2D(uv)
	if err != nil {
		return nil, fmt.Errorf("sdfx: Polygon2D: %w", err)
	}
	return &sdfxFace{wire: wire, poly: poly, axis: axis, offset: offset}, nil
}

// Extrude sweeps a face along dir. dir must be parallel to the face normal,
// i.e. the coordinate axis the face plane is perpendicular to.
func (k *SdfxKernel) Extrude(f kernel.Face, dir kernel.Vec3) (kernel.Solid, error) {
	face, ok := f.(*sdfxFace)
	if !ok {
		return nil, fmt.Errorf("sdfx: face %T was not created by this kernel", f)
	}

	d, err := axisComponent(dir, face.axis)
	if err != nil {
		return nil, err
	}

	// Extrude3D produces a slab symmetric about the 2D plane; orient it so
	// the (u,v) coordinates land back on the original axes, then shift the
	// slab so it spans [offset, offset+d] along the extrusion axis.
	s := sdf.Extrude3D(face.poly, math.Abs(d))
	m := sdf.Translate3d(axisVec(face.axis, face.offset+d/2))
	switch face.axis {
	case 0: // YZ plane, extrude along X: (u,v,w) -> (w,u,v)
		m = m.Mul(sdf.RotateX(math.Pi / 2).Mul(sdf.RotateY(math.Pi / 2)))
	case 1: // XZ plane, extrude along Y: (u,v,w) -> (u,±w,v)
		m = m.Mul(sdf.RotateX(math.Pi / 2))
	case 2: // XY plane, extrude along Z: already in place
	}
	return wrap(sdf.Transform3D(s, m)), nil
}

// MakeBox creates a box with its minimum corner at the origin, matching the
// placement convention the builders expect. sdf.Box3D centers the box at
// the origin, so it is shifted by half-dimensions.
func (k *SdfxKernel) MakeBox(w, l, h float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: w, Y: l, Z: h}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{X: w / 2, Y: l / 2, Z: h / 2})
	return wrap(sdf.Transform3D(s, m))
}

// MakeCompound groups solids without unioning them.
func (k *SdfxKernel) MakeCompound(solids []kernel.Solid) kernel.Solid {
	return kernel.NewCompound(solids)
}

// Translate moves a solid by v. Compounds are translated child by child so
// the grouping (and its seams) survives the transform.
func (k *SdfxKernel) Translate(s kernel.Solid, v kernel.Vec3) kernel.Solid {
	if c, ok := s.(*kernel.Compound); ok {
		children := c.Solids()
		moved := make([]kernel.Solid, len(children))
		for i, child := range children {
			moved[i] = k.Translate(child, v)
		}
		return kernel.NewCompound(moved)
	}
	m := sdf.Translate3d(v3.Vec{X: v.X, Y: v.Y, Z: v.Z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid about the origin by Euler angles in degrees,
// applied around X, then Y, then Z.
func (k *SdfxKernel) Rotate(s kernel.Solid, r kernel.Rotation) kernel.Solid {
	if r.IsZero() {
		return s
	}
	if c, ok := s.(*kernel.Compound); ok {
		children := c.Solids()
		rotated := make([]kernel.Solid, len(children))
		for i, child := range children {
			rotated[i] = k.Rotate(child, r)
		}
		return kernel.NewCompound(rotated)
	}
	const toRad = math.Pi / 180.0
	m := sdf.RotateZ(r.Z * toRad).Mul(sdf.RotateY(r.Y * toRad)).Mul(sdf.RotateX(r.X * toRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
// Compounds are meshed leaf by leaf and merged, so touching children keep
// their own surfaces instead of fusing into one.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	if c, ok := s.(*kernel.Compound); ok {
		out := &kernel.Mesh{}
		for i, child := range c.Solids() {
			m, err := k.ToMesh(child)
			if err != nil {
				return nil, fmt.Errorf("sdfx: compound child %d: %w", i, err)
			}
			out.Merge(m)
		}
		return out, nil
	}

	sdf3 := unwrap(s)
	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// ---------------------------------------------------------------------------
// Loop geometry helpers
// ---------------------------------------------------------------------------

func coincident(a, b kernel.Vec3) bool {
	return math.Abs(a.X-b.X) < planarTol &&
		math.Abs(a.Y-b.Y) < planarTol &&
		math.Abs(a.Z-b.Z) < planarTol
}

// loopPlane finds the coordinate plane a loop lies in. It returns the index
// of the constant axis and the plane's offset along it.
func loopPlane(pts []kernel.Vec3) (axis int, offset float64, err error) {
	for a := 0; a < 3; a++ {
		c := component(pts[0], a)
		flat := true
		for _, p := range pts[1:] {
			if math.Abs(component(p, a)-c) > planarTol {
				flat = false
				break
			}
		}
		if flat {
			return a, c, nil
		}
	}
	return 0, 0, fmt.Errorf("sdfx: polygon loop is not planar in a coordinate plane")
}

func component(v kernel.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func axisVec(axis int, val float64) v3.Vec {
	switch axis {
	case 0:
		return v3.Vec{X: val}
	case 1:
		return v3.Vec{Y: val}
	default:
		return v3.Vec{Z: val}
	}
}

// axisComponent extracts the extrusion distance along the face normal and
// rejects directions that are not perpendicular to the face plane.
func axisComponent(dir kernel.Vec3, axis int) (float64, error) {
	comps := [3]float64{dir.X, dir.Y, dir.Z}
	for a, c := range comps {
		if a != axis && math.Abs(c) > planarTol {
			return 0, fmt.Errorf("sdfx: extrusion direction %+v is not perpendicular to the face plane", dir)
		}
	}
	d := comps[axis]
	if math.Abs(d) < planarTol {
		return 0, fmt.Errorf("sdfx: extrusion distance is zero")
	}
	return d, nil
}

// project maps loop points onto 2D plane coordinates. The in-plane axes are
// taken in ascending order (YZ, XZ, XY for axis 0, 1, 2), which keeps the
// mapping consistent with the rotations applied in Extrude.
func project(pts []kernel.Vec3, axis int) []v2.Vec {
	uv := make([]v2.Vec, len(pts))
	for i, p := range pts {
		switch axis {
		case 0:
			uv[i] = v2.Vec{X: p.Y, Y: p.Z}
		case 1:
			uv[i] = v2.Vec{X: p.X, Y: p.Z}
		default:
			uv[i] = v2.Vec{X: p.X, Y: p.Y}
		}
	}
	return uv
}

// loopArea returns the signed area of a closed 2D loop (shoelace formula).
func loopArea(uv []v2.Vec) float64 {
	area := 0.0
	for i := range uv {
		j := (i + 1) % len(uv)
		area += uv[i].X*uv[j].Y - uv[j].X*uv[i].Y
	}
	return area / 2
}

// selfIntersects reports whether any two non-adjacent edges of the closed
// loop cross. Shared endpoints between adjacent edges are not crossings.
func selfIntersects(uv []v2.Vec) bool {
	n := len(uv)
	for i := 0; i < n; i++ {
		a1, a2 := uv[i], uv[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the edge itself and the two adjacent edges.
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1, b2 := uv[j], uv[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(p1, p2, p3, p4 v2.Vec) bool {
	d1 := cross2(p3, p4, p1)
	d2 := cross2(p3, p4, p2)
	d3 := cross2(p1, p2, p3)
	d4 := cross2(p1, p2, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross2(a, b, p v2.Vec) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
