package kernel

// Vec3 is a 3D vector. Lengths are in mm throughout.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Rotation is an orientation expressed as Euler angles in degrees,
// applied in X, Y, Z order.
type Rotation struct {
	X, Y, Z float64
}

// Named rotation constants. These replace ad-hoc process-wide rotation
// globals: an immutable set covering the placements assembly code needs.
var (
	RotIdentity = Rotation{}
	RotX90      = Rotation{X: 90}
	RotXNeg90   = Rotation{X: -90}
	RotY90      = Rotation{Y: 90}
	RotZ180     = Rotation{Z: 180}
)

// IsZero reports whether r is the identity rotation.
func (r Rotation) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0
}
