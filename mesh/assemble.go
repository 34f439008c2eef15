package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/voxelsplace/voxmesh/vox"
)

// Kind selects the rendering treatment of a batch.
type Kind uint8

const (
	Opaque Kind = iota
	Translucent
)

func (k Kind) String() string {
	if k == Translucent {
		return "translucent"
	}
	return "opaque"
}

// KindOf returns the batch a non-empty voxel's faces belong to.
func KindOf(v vox.Voxel) Kind {
	if v.Translucent() {
		return Translucent
	}
	return Opaque
}

// Batch is an ordered run of quads sharing one rendering treatment.
type Batch struct {
	Kind  Kind
	Quads []Quad
}

// Range is the sub-range of the flattened arrays holding one non-empty batch.
type Range struct {
	Kind   Kind
	Offset int
	Count  int
}

// Mesh holds the flattened point-quad attributes. All three arrays have one
// entry per quad; UVs carry the face tag in X and zero in Y.
type Mesh struct {
	Positions []mgl32.Vec3
	Colors    [][4]uint8
	UVs       []mgl32.Vec2
	Ranges    []Range
}

// Assemble flattens batches in order, preserving quad order inside each batch.
// Empty batches produce no range.
func Assemble(batches []Batch) *Mesh {
	n := 0
	for _, b := range batches {
		n += len(b.Quads)
	}
	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, n),
		Colors:    make([][4]uint8, 0, n),
		UVs:       make([]mgl32.Vec2, 0, n),
	}
	for _, b := range batches {
		if len(b.Quads) == 0 {
			continue
		}
		m.Ranges = append(m.Ranges, Range{Kind: b.Kind, Offset: len(m.Positions), Count: len(b.Quads)})
		for _, q := range b.Quads {
			m.Positions = append(m.Positions, mgl32.Vec3{float32(q.Anchor[0]), float32(q.Anchor[1]), float32(q.Anchor[2])})
			m.Colors = append(m.Colors, q.Color.Bytes())
			m.UVs = append(m.UVs, mgl32.Vec2{float32(q.Face), 0})
		}
	}
	return m
}

// Len returns the number of points.
func (m *Mesh) Len() int { return len(m.Positions) }

func (m *Mesh) IsEmpty() bool { return len(m.Positions) == 0 }

// Face decodes the face tag of point i.
func (m *Mesh) Face(i int) Face { return Face(m.UVs[i].X()) }

// RangeOf returns the range of the given kind, if the mesh has one.
func (m *Mesh) RangeOf(k Kind) (Range, bool) {
	for _, r := range m.Ranges {
		if r.Kind == k {
			return r, true
		}
	}
	return Range{}, false
}

// Indices returns the point index buffer of r, one index per point.
func (r Range) Indices() []uint32 {
	idx := make([]uint32, r.Count)
	for i := range idx {
		idx[i] = uint32(r.Offset + i)
	}
	return idx
}
