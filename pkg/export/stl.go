// Package export writes tessellated meshes to interchange formats.
// The kernel's mesher produces flat triangle soups, which map directly
// onto binary STL: one facet per triangle with its normal.
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/karvel/fenestra/pkg/kernel"
)

// stlHeaderSize is the fixed binary STL header length.
const stlHeaderSize = 80

// WriteSTL writes meshes as a single binary STL solid. STL has no notion
// of parts, so the meshes are concatenated facet by facet.
func WriteSTL(w io.Writer, meshes []*kernel.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [stlHeaderSize]byte
	copy(header[:], "fenestra binary STL")
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("export: write STL header: %w", err)
	}

	total := 0
	for _, m := range meshes {
		total += m.TriangleCount()
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(total)); err != nil {
		return fmt.Errorf("export: write STL facet count: %w", err)
	}

	for _, m := range meshes {
		if err := writeFacets(bw, m); err != nil {
			return fmt.Errorf("export: part %q: %w", m.PartName, err)
		}
	}
	return bw.Flush()
}

// writeFacets emits one 50-byte STL record per triangle: normal, three
// vertices, and a zero attribute word.
func writeFacets(w io.Writer, m *kernel.Mesh) error {
	var record [50]byte
	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]

		// The mesher stores one normal per vertex; a facet's vertices
		// share it, so the first vertex's normal is the facet normal.
		putVec(record[0:], m.Normals, i0)
		putVec(record[12:], m.Vertices, i0)
		putVec(record[24:], m.Vertices, i1)
		putVec(record[36:], m.Vertices, i2)
		record[48], record[49] = 0, 0

		if _, err := w.Write(record[:]); err != nil {
			return err
		}
	}
	return nil
}

func putVec(dst []byte, flat []float32, idx uint32) {
	off := int(idx) * 3
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(flat[off+i]))
	}
}

// SaveSTL writes meshes to path as binary STL.
func SaveSTL(path string, meshes []*kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WriteSTL(f, meshes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
