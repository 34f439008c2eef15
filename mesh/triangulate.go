package mesh

import "github.com/go-gl/mathgl/mgl32"

// TriMesh is the conventional expansion of a point-quad Mesh: four vertices
// and two triangles per quad. Ranges index into Indices.
type TriMesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    [][4]uint8
	Indices   []uint32
	Ranges    []Range
}

// corners returns the four corners of the unit face f anchored at a, wound
// counter-clockwise when seen from outside.
func corners(a mgl32.Vec3, f Face) [4]mgl32.Vec3 {
	dir := directions[f]
	du := mgl32.Vec3{float32(dir.du[0]), float32(dir.du[1]), float32(dir.du[2])}
	dv := mgl32.Vec3{float32(dir.dv[0]), float32(dir.dv[1]), float32(dir.dv[2])}
	verts := [4]mgl32.Vec3{a, a.Add(du), a.Add(du).Add(dv), a.Add(dv)}

	swap := !f.Positive() != (dir.axis == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}
	return verts
}

// NormalVec is Normal as a float vector.
func (f Face) NormalVec() mgl32.Vec3 {
	s := directions[f].step
	return mgl32.Vec3{float32(s[0]), float32(s[1]), float32(s[2])}
}

// Triangulate expands every point of m into a quad made of two triangles,
// for renderers that cannot expand points themselves.
func Triangulate(m *Mesh) *TriMesh {
	n := m.Len()
	t := &TriMesh{
		Positions: make([]mgl32.Vec3, 0, 4*n),
		Normals:   make([]mgl32.Vec3, 0, 4*n),
		Colors:    make([][4]uint8, 0, 4*n),
		Indices:   make([]uint32, 0, 6*n),
	}
	for i := 0; i < n; i++ {
		f := m.Face(i)
		nrm := f.NormalVec()
		base := uint32(len(t.Positions))
		for _, p := range corners(m.Positions[i], f) {
			t.Positions = append(t.Positions, p)
			t.Normals = append(t.Normals, nrm)
			t.Colors = append(t.Colors, m.Colors[i])
		}
		t.Indices = append(t.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	for _, r := range m.Ranges {
		t.Ranges = append(t.Ranges, Range{Kind: r.Kind, Offset: 6 * r.Offset, Count: 6 * r.Count})
	}
	return t
}

// RangeIndices returns the slice of Indices covered by r.
func (t *TriMesh) RangeIndices(r Range) []uint32 {
	return t.Indices[r.Offset : r.Offset+r.Count]
}
