// Package tessellate converts built assemblies into triangle meshes using
// a geometry kernel. One mesh is produced per named part; compound parts
// (frames) are meshed leaf by leaf and merged, so corner seams survive
// instead of fusing into one surface.
package tessellate

import (
	"fmt"

	"github.com/karvel/fenestra/pkg/kernel"
	"github.com/karvel/fenestra/pkg/window"
)

// Parts tessellates each assembly part into its own named mesh. Parts that
// produce no geometry (empty compounds) are skipped.
func Parts(parts []window.Part, k kernel.Kernel) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, p := range parts {
		mesh, err := k.ToMesh(p.Solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: part %q: %w", p.Name, err)
		}
		if mesh.IsEmpty() {
			continue
		}
		mesh.PartName = p.Name
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// Assembly tessellates a whole window assembly, one mesh per part.
func Assembly(asm *window.Assembly, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if asm == nil {
		return nil, nil
	}
	return Parts(asm.Parts, k)
}
