package tessellate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/karvel/fenestra/pkg/kernel"
	"github.com/karvel/fenestra/pkg/window"
)

// meshKernel implements only the ToMesh path; the other kernel operations
// are unreachable from this package.
type meshKernel struct {
	fail bool
}

type flatSolid struct {
	tris int
}

func (s *flatSolid) BoundingBox() (min, max kernel.Vec3) { return }

func (k *meshKernel) MakePolygon(pts []kernel.Vec3) (kernel.Wire, error) { panic("unused") }
func (k *meshKernel) FillFace(w kernel.Wire) (kernel.Face, error)        { panic("unused") }
func (k *meshKernel) Extrude(f kernel.Face, dir kernel.Vec3) (kernel.Solid, error) {
	panic("unused")
}
func (k *meshKernel) MakeBox(w, l, h float64) kernel.Solid { panic("unused") }
func (k *meshKernel) MakeCompound(solids []kernel.Solid) kernel.Solid {
	return kernel.NewCompound(solids)
}
func (k *meshKernel) Translate(s kernel.Solid, v kernel.Vec3) kernel.Solid { return s }
func (k *meshKernel) Rotate(s kernel.Solid, r kernel.Rotation) kernel.Solid {
	return s
}

func (k *meshKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	if k.fail {
		return nil, errors.New("mesh backend unavailable")
	}
	if c, ok := s.(*kernel.Compound); ok {
		out := &kernel.Mesh{}
		for _, child := range c.Solids() {
			m, _ := k.ToMesh(child)
			out.Merge(m)
		}
		return out, nil
	}
	fs := s.(*flatSolid)
	m := &kernel.Mesh{}
	for i := 0; i < fs.tris; i++ {
		m.Vertices = append(m.Vertices, 0, 0, 0, 1, 0, 0, 0, 1, 0)
		m.Normals = append(m.Normals, 0, 0, 1, 0, 0, 1, 0, 0, 1)
		base := uint32(i * 3)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m, nil
}

var _ kernel.Kernel = (*meshKernel)(nil)

func TestPartsOneMeshPerPart(t *testing.T) {
	k := &meshKernel{}
	parts := []window.Part{
		{Name: "frame", Solid: k.MakeCompound([]kernel.Solid{&flatSolid{tris: 2}, &flatSolid{tris: 3}})},
		{Name: "glass", Solid: &flatSolid{tris: 4}},
	}

	meshes, err := Parts(parts, k)
	if err != nil {
		t.Fatalf("Parts failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}
	if meshes[0].PartName != "frame" || meshes[1].PartName != "glass" {
		t.Errorf("mesh names = %q, %q", meshes[0].PartName, meshes[1].PartName)
	}
	// Compound leaves are merged into the part's mesh.
	if got := meshes[0].TriangleCount(); got != 5 {
		t.Errorf("frame mesh has %d triangles, want 5", got)
	}
}

func TestPartsSkipsEmpty(t *testing.T) {
	k := &meshKernel{}
	parts := []window.Part{
		{Name: "empty", Solid: k.MakeCompound(nil)},
		{Name: "glass", Solid: &flatSolid{tris: 1}},
	}
	meshes, err := Parts(parts, k)
	if err != nil {
		t.Fatalf("Parts failed: %v", err)
	}
	if len(meshes) != 1 || meshes[0].PartName != "glass" {
		t.Fatalf("expected only the glass mesh, got %d meshes", len(meshes))
	}
}

func TestPartsPropagatesKernelFailure(t *testing.T) {
	k := &meshKernel{fail: true}
	parts := []window.Part{{Name: "frame", Solid: &flatSolid{tris: 1}}}
	_, err := Parts(parts, k)
	if err == nil {
		t.Fatal("expected kernel failure to propagate")
	}
	if want := fmt.Sprintf("part %q", "frame"); !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not name the failing part", err)
	}
}

func TestAssemblyNil(t *testing.T) {
	meshes, err := Assembly(nil, &meshKernel{})
	if err != nil || meshes != nil {
		t.Errorf("Assembly(nil) = %v, %v; want nil, nil", meshes, err)
	}
}
