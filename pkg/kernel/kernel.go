// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx today, a B-rep backend later) provide polygon
// construction, face filling, extrusion and solid grouping behind this
// interface. The kernel abstraction allows swapping backends without
// changing the builders that drive them.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max Vec3)
}

// Wire is a closed, ordered planar loop of points.
type Wire interface {
	// Points returns the loop vertices in order. The loop is implicitly
	// closed; the first point is not repeated at the end.
	Points() []Vec3
}

// Face is a planar region bounded by a wire, ready to be extruded.
type Face interface {
	// Outline returns the wire that bounds the face.
	Outline() Wire
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// MakePolygon builds a closed planar loop from ordered points.
	// The last point may repeat the first to close the loop explicitly.
	MakePolygon(pts []Vec3) (Wire, error)

	// FillFace fills a closed planar loop into a face. The loop must be
	// planar, non-degenerate and free of self-intersections; violations
	// are reported as errors before any solid is produced.
	FillFace(w Wire) (Face, error)

	// Extrude sweeps a planar face along dir to produce a solid.
	// dir must be perpendicular to the face plane.
	Extrude(f Face, dir Vec3) (Solid, error)

	// MakeBox creates an axis-aligned box with its minimum corner at the
	// origin, spanning (w, l, h) along X, Y, Z.
	MakeBox(w, l, h float64) Solid

	// MakeCompound groups independent solids into one non-unioned
	// compound. Touching or coincident faces remain as seams.
	MakeCompound(solids []Solid) Solid

	// Translate moves a solid by v.
	Translate(s Solid, v Vec3) Solid

	// Rotate rotates a solid about the origin.
	Rotate(s Solid, r Rotation) Solid

	// ToMesh converts a solid to a triangle mesh. Compounds are meshed
	// leaf by leaf and merged, preserving seams.
	ToMesh(s Solid) (*Mesh, error)
}
