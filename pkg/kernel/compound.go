package kernel

// Compound is a non-unioned grouping of independent solids treated as one
// logical shape. It is backend-independent: grouping never touches the
// underlying geometry, so coincident faces between children remain as
// separate touching surfaces.
type Compound struct {
	children []Solid
}

// NewCompound groups solids into a compound. The slice is copied.
func NewCompound(solids []Solid) *Compound {
	c := &Compound{children: make([]Solid, len(solids))}
	copy(c.children, solids)
	return c
}

// Solids returns the direct children of the compound.
func (c *Compound) Solids() []Solid {
	return c.children
}

// BoundingBox returns the merged bounding box of all children.
// An empty compound reports a zero box.
func (c *Compound) BoundingBox() (min, max Vec3) {
	for i, s := range c.children {
		smin, smax := s.BoundingBox()
		if i == 0 {
			min, max = smin, smax
			continue
		}
		min = Vec3{minf(min.X, smin.X), minf(min.Y, smin.Y), minf(min.Z, smin.Z)}
		max = Vec3{maxf(max.X, smax.X), maxf(max.Y, smax.Y), maxf(max.Z, smax.Z)}
	}
	return min, max
}

// Flatten returns the leaf solids of s in composition order. A non-compound
// solid is its own single leaf.
func Flatten(s Solid) []Solid {
	c, ok := s.(*Compound)
	if !ok {
		return []Solid{s}
	}
	var leaves []Solid
	for _, child := range c.children {
		leaves = append(leaves, Flatten(child)...)
	}
	return leaves
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
